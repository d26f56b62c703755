package catalog

import "errors"

// Catalog-specific errors
var (
	ErrUnknownKind   = errors.New("unknown shape kind")
	ErrMissingField  = errors.New("missing shape field")
	ErrDuplicateName = errors.New("duplicate shape name")
	ErrEmptyName     = errors.New("shape name is empty")
)
