package vivid

import "math"

const polygonCount = 12

// renderPolygons draws twelve layered irregular polygons around the surface
// center using additive compositing for this layer only. Vertices sit at
// evenly spaced angles with per-vertex jitter and radial scaling.
//
// Per polygon the Rand is consumed as: vertex count, base radius, then
// (jitter, scale) per vertex, then the fill alpha.
func renderPolygons(rnd *Rand, p *Pixmap, pal Palette) {
	w := float64(p.Width())
	h := float64(p.Height())
	cx := w / 2
	cy := h / 2
	minDim := math.Min(w, h)

	pts := make([]Point, 0, 8)
	for i := 0; i < polygonCount; i++ {
		count := int(rnd.Range(3, 8))
		base := rnd.Range(0.2, 0.5) * minDim

		pts = pts[:0]
		for j := 0; j < count; j++ {
			jitter := rnd.Range(-0.5, 0.5)
			scale := rnd.Range(0.6, 1.2)
			angle := 2*math.Pi*float64(j)/float64(count) + jitter
			r := base * scale
			pts = append(pts, Point{
				X: cx + r*math.Cos(angle),
				Y: cy + r*math.Sin(angle),
			})
		}

		// Alpha lands in the hex range 0x40-0x90 of 255.
		alpha := float64(int(rnd.Range(0x40, 0x90))) / 255
		p.FillPolygon(pts, pal.ColorAt(i).WithAlpha(alpha), OpPlus)
	}
}
