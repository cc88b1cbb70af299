package lomc

import "errors"

// Sentinel errors the encoder surfaces, per the error handling design: every
// failure aborts the current encode and no partial frame is ever written.
var (
	// ErrInvalidInput is returned for zero frames, or a frame whose width or
	// height differs from the first frame's.
	ErrInvalidInput = errors.New("lomc: invalid input")

	// ErrInternalInvariant is returned when the codec's own output would
	// violate the bitstream's invariants: a residual byte that doesn't fit
	// its chosen width after the width's offset is applied, or an attempt to
	// emit a width outside {0, 1, 2, 4, 8}. Seeing this means the codec
	// itself has a bug, not that the caller passed bad input.
	ErrInternalInvariant = errors.New("lomc: internal invariant violated")
)
