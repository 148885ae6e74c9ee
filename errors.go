package landscape

import "errors"

// Shape mismatches and unknown indicator tags are
// ordinary errors returned to the caller. Indicator-domain violations
// (e.g. subtracting from an empty accumulator) are programmer errors in
// the engine, not data errors, and panic instead — see indicator.go.

// ErrShapeMismatch is returned when an input, output, or weight raster
// disagree on (Size1, Size2).
var ErrShapeMismatch = errors.New("landscape: raster shapes do not match")

// ErrUnknownIndicator is returned by Run for an IndicatorTag it does
// not recognise.
var ErrUnknownIndicator = errors.New("landscape: unknown indicator tag")
