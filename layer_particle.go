package vivid

const (
	particleCount = 800
	particleAlpha = 0.15
)

// renderParticles sprinkles eight hundred tiny translucent white squares
// uniformly across the full surface, adding fine grain noise. Per particle
// the Rand is consumed as x, y, side, in that order.
func renderParticles(rnd *Rand, p *Pixmap) {
	w := float64(p.Width())
	h := float64(p.Height())

	white := White.WithAlpha(particleAlpha)
	for i := 0; i < particleCount; i++ {
		x := rnd.Next() * w
		y := rnd.Next() * h
		side := rnd.Range(0.5, 2)
		p.FillRect(x, y, side, side, white, OpOver)
	}
}
