package model

import "github.com/pkg/errors"

var (
	// ErrInvalidDimensions is returned when a world is requested with a zero or negative size
	ErrInvalidDimensions = errors.New("invalid world dimensions")
	// ErrIndexOutOfRange marks a read or write outside [0, width*height)
	ErrIndexOutOfRange = errors.New("cell index out of range")
	// ErrPatternOutOfBounds is returned when a pattern does not fit at the requested position
	ErrPatternOutOfBounds = errors.New("pattern out of bounds")
)
