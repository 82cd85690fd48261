package delegate

import "errors"

// Sentinel kinds for result decoding errors.
var (
	ErrNoData     = errors.New("no data in failed result")
	ErrBadPayload = errors.New("undecodable result payload")
)
