package geometry

import "errors"

// Geometry errors
var (
	ErrNullVector     = errors.New("null vector has no direction")
	ErrDivisionByZero = errors.New("vector divided by zero")
	ErrInvalidPolygon = errors.New("invalid polygon")
)
