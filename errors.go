package xshape

import "errors"

var (
	// ErrInvalidSideCount is returned when a regular polygon is
	// requested with fewer than two sides.
	ErrInvalidSideCount = errors.New("invalid side count")

	// ErrNotImplemented is the error that operations which exist in
	// the API but have no defined geometry yet panic with.
	ErrNotImplemented = errors.New("not implemented")
)
