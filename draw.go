package vivid

import (
	"math"
	"sort"
)

// Drawing operations over a Pixmap. Everything here samples at pixel centers
// (x+0.5, y+0.5) so that output is independent of traversal order and stable
// across runs.

// FillLinearGradient fills the whole surface with g, replacing prior
// contents. This is the backdrop base fill, so it uses copy compositing.
func (p *Pixmap) FillLinearGradient(g *LinearGradient) {
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			c := g.ColorAt(float64(x)+0.5, float64(y)+0.5)
			p.BlendPixel(x, y, c, OpCopy)
		}
	}
}

// FillRadialGradient composites g over the surface using op, touching only
// the bounding box of the gradient circle. Pixels at or beyond the gradient
// radius are skipped entirely rather than blended at zero alpha.
func (p *Pixmap) FillRadialGradient(g *RadialGradient, op CompositeOp) {
	if g.Radius <= 0 {
		return
	}
	x0 := int(math.Floor(g.Center.X - g.Radius))
	x1 := int(math.Ceil(g.Center.X + g.Radius))
	y0 := int(math.Floor(g.Center.Y - g.Radius))
	y1 := int(math.Ceil(g.Center.Y + g.Radius))

	x0 = max(x0, 0)
	y0 = max(y0, 0)
	x1 = min(x1, p.width)
	y1 = min(y1, p.height)

	r2 := g.Radius * g.Radius
	for y := y0; y < y1; y++ {
		fy := float64(y) + 0.5 - g.Center.Y
		for x := x0; x < x1; x++ {
			fx := float64(x) + 0.5 - g.Center.X
			if fx*fx+fy*fy >= r2 {
				continue
			}
			c := g.ColorAt(float64(x)+0.5, float64(y)+0.5)
			p.BlendPixel(x, y, c, op)
		}
	}
}

// FillPolygon fills the polygon described by pts with a solid color,
// compositing with op. The even-odd rule decides interior pixels; scanlines
// are sampled at row centers. Degenerate polygons (fewer than 3 vertices)
// draw nothing.
func (p *Pixmap) FillPolygon(pts []Point, c RGBA, op CompositeOp) {
	if len(pts) < 3 {
		return
	}

	minY, maxY := pts[0].Y, pts[0].Y
	for _, pt := range pts[1:] {
		minY = math.Min(minY, pt.Y)
		maxY = math.Max(maxY, pt.Y)
	}
	y0 := max(int(math.Floor(minY)), 0)
	y1 := min(int(math.Ceil(maxY)), p.height)

	// Reused intersection buffer for the polygon's scanlines.
	xs := make([]float64, 0, len(pts))

	for y := y0; y < y1; y++ {
		fy := float64(y) + 0.5
		xs = xs[:0]
		j := len(pts) - 1
		for i := range pts {
			a, b := pts[i], pts[j]
			j = i
			if (a.Y <= fy) == (b.Y <= fy) {
				continue
			}
			// Edge crosses the scanline; record the x intersection.
			t := (fy - a.Y) / (b.Y - a.Y)
			xs = append(xs, a.X+t*(b.X-a.X))
		}
		if len(xs) < 2 {
			continue
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			xa := max(int(math.Ceil(xs[i]-0.5)), 0)
			xb := min(int(math.Ceil(xs[i+1]-0.5)), p.width)
			for x := xa; x < xb; x++ {
				p.BlendPixel(x, y, c, op)
			}
		}
	}
}

// FillRect composites a solid axis-aligned rectangle over the surface.
// Coordinates are in continuous space; covered pixel centers are filled.
func (p *Pixmap) FillRect(x, y, w, h float64, c RGBA, op CompositeOp) {
	if w <= 0 || h <= 0 {
		return
	}
	x0 := max(int(math.Ceil(x-0.5)), 0)
	y0 := max(int(math.Ceil(y-0.5)), 0)
	x1 := min(int(math.Ceil(x+w-0.5)), p.width)
	y1 := min(int(math.Ceil(y+h-0.5)), p.height)

	for yy := y0; yy < y1; yy++ {
		for xx := x0; xx < x1; xx++ {
			p.BlendPixel(xx, yy, c, op)
		}
	}
}
