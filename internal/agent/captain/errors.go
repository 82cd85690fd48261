package captain

import "errors"

// ErrNoScheduleCaller is returned by Start when no schedule-agent client
// was configured.
var ErrNoScheduleCaller = errors.New("captain: no schedule caller configured")
