package world

import "errors"

var (
	// ErrNilMap is returned when a nil map is passed to an entry point.
	ErrNilMap = errors.New("world: nil map")
	// ErrInvalidDimensions is returned when a map cannot be allocated at the
	// requested size even after correction.
	ErrInvalidDimensions = errors.New("world: invalid map dimensions")
	// ErrInvalidEdge is returned for a boundary edge outside the four sides.
	ErrInvalidEdge = errors.New("world: invalid boundary edge")
	// ErrPlacementExhausted is returned when rejection sampling runs out of
	// attempts before finding a valid cell.
	ErrPlacementExhausted = errors.New("world: placement attempts exhausted")
	// ErrDisconnected is returned when a generated floor fails validation.
	ErrDisconnected = errors.New("world: floor is not fully connected")
)
