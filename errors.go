package vivid

import (
	"errors"
	"strconv"
)

// ErrSurfaceUnavailable is returned when the target drawing surface could
// not be acquired or sized. The generation aborts with no result; a partial
// surface is never exposed.
var ErrSurfaceUnavailable = errors.New("vivid: surface unavailable")

// InvalidParameterError indicates an unknown style, palette, or resolution
// reference. It is surfaced before any drawing begins.
type InvalidParameterError struct {
	Param string // "style", "palette", or "resolution"
	Value string // the unresolved reference
}

func (e *InvalidParameterError) Error() string {
	return "vivid: unknown " + e.Param + ": " + strconv.Quote(e.Value)
}
