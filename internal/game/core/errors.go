package core

import "errors"

var (
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrInvalidSize        = errors.New("map dimensions must be positive")
)
