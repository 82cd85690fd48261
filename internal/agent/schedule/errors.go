package schedule

import "errors"

// ErrNoEventCreator is returned by Start when no event-store client was
// configured.
var ErrNoEventCreator = errors.New("schedule: no event creator configured")
