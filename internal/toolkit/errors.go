package toolkit

import "errors"

// Sentinel kinds for tool registration and invocation errors.
var (
	ErrInvalidInput  = errors.New("invalid tool input")
	ErrUnnamedTool   = errors.New("tool has no name")
	ErrNilHandler    = errors.New("tool has no handler")
	ErrDuplicateTool = errors.New("tool already registered")
)
