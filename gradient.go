package vivid

import (
	"math"
	"sort"
)

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// sortStops returns the stops sorted by offset, leaving the input unchanged.
func sortStops(stops []ColorStop) []ColorStop {
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return sorted
}

// colorAtOffset returns the interpolated color at a given offset.
// Offsets outside [0, 1] clamp to the edge stops (pad extension).
// Interpolation is a plain sRGB lerp, matching canvas gradient semantics.
func colorAtOffset(stops []ColorStop, t float64) RGBA {
	if len(stops) == 0 {
		return Transparent
	}
	if len(stops) == 1 {
		return stops[0].Color
	}

	sorted := sortStops(stops)
	t = clamp01(t)

	idx := sort.Search(len(sorted), func(i int) bool {
		return sorted[i].Offset >= t
	})
	if idx == 0 {
		return sorted[0].Color
	}
	if idx >= len(sorted) {
		return sorted[len(sorted)-1].Color
	}

	stop1 := sorted[idx-1]
	stop2 := sorted[idx]
	if stop2.Offset == stop1.Offset {
		return stop1.Color
	}

	localT := (t - stop1.Offset) / (stop2.Offset - stop1.Offset)
	return stop1.Color.Lerp(stop2.Color, localT)
}

// LinearGradient represents a linear color transition between two points.
//
// Example:
//
//	g := vivid.NewLinearGradient(0, 0, 100, 0).
//	    AddColorStop(0, vivid.Hex("#5EEAD4")).
//	    AddColorStop(1, vivid.Hex("#F0ABFC"))
type LinearGradient struct {
	Start Point       // Start point of the gradient
	End   Point       // End point of the gradient
	Stops []ColorStop // Color stops defining the gradient
}

// NewLinearGradient creates a new linear gradient from (x0, y0) to (x1, y1).
func NewLinearGradient(x0, y0, x1, y1 float64) *LinearGradient {
	return &LinearGradient{
		Start: Point{X: x0, Y: y0},
		End:   Point{X: x1, Y: y1},
	}
}

// AddColorStop adds a color stop at the specified offset.
// Offset should be in the range [0, 1].
// Returns the gradient for method chaining.
func (g *LinearGradient) AddColorStop(offset float64, c RGBA) *LinearGradient {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
	return g
}

// ColorAt returns the color at the given point.
func (g *LinearGradient) ColorAt(x, y float64) RGBA {
	dx := g.End.X - g.Start.X
	dy := g.End.Y - g.Start.Y
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		return firstStopColor(g.Stops)
	}

	// Project the point onto the gradient line:
	// t = dot(P - Start, End - Start) / |End - Start|^2
	px := x - g.Start.X
	py := y - g.Start.Y
	t := (px*dx + py*dy) / lengthSq

	return colorAtOffset(g.Stops, t)
}

// RadialGradient represents a radial color transition. Colors radiate from
// the center out to Radius, where t reaches 1.
type RadialGradient struct {
	Center Point       // Center of the gradient circle
	Radius float64     // Radius where the gradient ends (t=1)
	Stops  []ColorStop // Color stops defining the gradient
}

// NewRadialGradient creates a new radial gradient around (cx, cy).
func NewRadialGradient(cx, cy, radius float64) *RadialGradient {
	return &RadialGradient{
		Center: Point{X: cx, Y: cy},
		Radius: radius,
	}
}

// AddColorStop adds a color stop at the specified offset.
// Offset should be in the range [0, 1].
// Returns the gradient for method chaining.
func (g *RadialGradient) AddColorStop(offset float64, c RGBA) *RadialGradient {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
	return g
}

// ColorAt returns the color at the given point.
func (g *RadialGradient) ColorAt(x, y float64) RGBA {
	if g.Radius == 0 {
		return firstStopColor(g.Stops)
	}
	dx := x - g.Center.X
	dy := y - g.Center.Y
	t := math.Sqrt(dx*dx+dy*dy) / g.Radius
	return colorAtOffset(g.Stops, t)
}

// firstStopColor returns the lowest-offset stop's color or Transparent if empty.
func firstStopColor(stops []ColorStop) RGBA {
	if len(stops) == 0 {
		return Transparent
	}
	return sortStops(stops)[0].Color
}
