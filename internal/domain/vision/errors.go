package vision

import "errors"

// Sentinel kinds for analyzer errors.
var (
	ErrEmptyImage = errors.New("empty image content")
)
