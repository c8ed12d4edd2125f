package vivid

import "math"

const (
	backdropBlobCount = 8

	// blobInnerStop is the gradient offset where a blob's solid core ends;
	// shared by the backdrop and fluid layers.
	blobInnerStop = 0.2

	backdropInnerAlpha = 1.0
)

// renderBackdrop fills the whole surface with a corner-to-corner linear
// gradient through the palette's three colors (stops 0, 0.6, 1.0), then
// layers eight soft blobs over it.
//
// Blob centers may fall outside the visible area so their falloff reaches
// the edges naturally. Per blob the Rand is consumed as cx, cy, radius, in
// that order.
func renderBackdrop(rnd *Rand, p *Pixmap, pal Palette) {
	w := float64(p.Width())
	h := float64(p.Height())

	base := NewLinearGradient(0, 0, w, h).
		AddColorStop(0, pal.ColorAt(0)).
		AddColorStop(0.6, pal.ColorAt(1)).
		AddColorStop(1, pal.ColorAt(2))
	p.FillLinearGradient(base)

	maxDim := math.Max(w, h)
	for i := 0; i < backdropBlobCount; i++ {
		cx := rnd.Range(-0.2, 1.2) * w
		cy := rnd.Range(-0.2, 1.2) * h
		radius := rnd.Range(0.1, 0.6) * maxDim

		blob := NewRadialGradient(cx, cy, radius).
			AddColorStop(blobInnerStop, pal.ColorAt(i).WithAlpha(backdropInnerAlpha)).
			AddColorStop(1, pal.ColorAt(i+1).WithAlpha(0))
		p.FillRadialGradient(blob, OpOver)
	}
}
