package vivid

import "math"

const (
	fluidBlobCount  = 60
	fluidInnerAlpha = 0.9
)

// renderFluid scatters sixty small soft blobs across an expanded canvas,
// the same gradient shape as the backdrop's blobs but denser and smaller,
// giving a fluid aurora texture. Per blob the Rand is consumed as cx, cy,
// radius, in that order.
func renderFluid(rnd *Rand, p *Pixmap, pal Palette) {
	w := float64(p.Width())
	h := float64(p.Height())
	maxDim := math.Max(w, h)

	for i := 0; i < fluidBlobCount; i++ {
		cx := rnd.Range(-0.2, 1.2) * w
		cy := rnd.Range(-0.2, 1.2) * h
		radius := rnd.Range(0.05, 0.25) * maxDim

		blob := NewRadialGradient(cx, cy, radius).
			AddColorStop(blobInnerStop, pal.ColorAt(i).WithAlpha(fluidInnerAlpha)).
			AddColorStop(1, pal.ColorAt(i+1).WithAlpha(0))
		p.FillRadialGradient(blob, OpOver)
	}
}
