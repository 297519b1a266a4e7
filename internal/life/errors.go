package life

import "errors"

// Sentinel errors returned (wrapped) by the engine. Use errors.Is to match.
var (
	// ErrInvalidRule is returned when a rule digit string contains anything
	// other than decimal digits, or a rule string is malformed.
	ErrInvalidRule = errors.New("invalid rule")

	// ErrOutOfBounds is returned by coordinate-addressed operations when a
	// coordinate lies outside the grid. Neighbor lookups during Tick wrap and
	// never produce it.
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrInvalidDimensions is returned for negative widths or heights.
	ErrInvalidDimensions = errors.New("invalid dimensions")

	// ErrInvalidTopology is returned for unknown topology values or names.
	ErrInvalidTopology = errors.New("invalid topology")
)
