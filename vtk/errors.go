package vtk

import "errors"

// Common errors
var (
	ErrConfigConsumed = errors.New("conversion configuration already consumed")
	ErrIndexRange     = errors.New("group index out of range")
)
