package toolapi

import (
	"errors"
	"fmt"
)

// Sentinel kinds for API errors.
var (
	ErrUnknownTool = errors.New("unknown tool")
	ErrBadRequest  = errors.New("bad request")
)

// Wrap annotates err with the operation that raised it.
func Wrap(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// NewKind annotates a sentinel kind with the operation that raised it.
func NewKind(op string, kind error) error {
	return fmt.Errorf("%s: %w", op, kind)
}

// WrapKind annotates a cause with its sentinel kind and the operation that
// raised it.
func WrapKind(op string, kind, err error) error {
	return fmt.Errorf("%s: %w: %v", op, kind, err)
}
