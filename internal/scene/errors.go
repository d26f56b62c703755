package scene

import "errors"

// Scene-specific errors
var (
	ErrBodyNotFound = errors.New("body not found")
	ErrNilShape     = errors.New("shape is nil")
)
