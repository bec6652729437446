package mines

import "errors"

var (
	// ErrInvalidConfiguration is returned when a board cannot be built
	// from the requested dimensions and mine count.
	ErrInvalidConfiguration = errors.New("invalid board configuration")

	// ErrOutOfBounds is returned for coordinates outside the grid.
	ErrOutOfBounds = errors.New("cell out of bounds")

	// ErrPlacement is returned when mines cannot be placed outside the
	// safe zone of the first revealed cell.
	ErrPlacement = errors.New("unable to place mines")
)
