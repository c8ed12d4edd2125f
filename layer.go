package vivid

// Layer identifies one discrete drawing algorithm applied to the shared
// surface during a generation.
type Layer uint8

const (
	// LayerBackdrop fills the surface with the base gradient and soft blobs.
	LayerBackdrop Layer = iota
	// LayerPolygon draws additive layered polygons around the center.
	LayerPolygon
	// LayerFluid scatters dense soft blobs for an aurora texture.
	LayerFluid
	// LayerParticle sprinkles fine white grain across the surface.
	LayerParticle
	// LayerScanline darkens every even row, a retro display artifact.
	LayerScanline
)

// String returns the layer's name.
func (l Layer) String() string {
	switch l {
	case LayerBackdrop:
		return "backdrop"
	case LayerPolygon:
		return "polygon"
	case LayerFluid:
		return "fluid"
	case LayerParticle:
		return "particle"
	case LayerScanline:
		return "scanline"
	default:
		return "unknown"
	}
}

// render applies the layer to the surface. Every layer consumes the shared
// Rand in a fixed internal order; reordering any draw would change every
// seed's output. Scanline consumes no randomness.
func (l Layer) render(rnd *Rand, p *Pixmap, pal Palette) {
	switch l {
	case LayerBackdrop:
		renderBackdrop(rnd, p, pal)
	case LayerPolygon:
		renderPolygons(rnd, p, pal)
	case LayerFluid:
		renderFluid(rnd, p, pal)
	case LayerParticle:
		renderParticles(rnd, p)
	case LayerScanline:
		renderScanlines(p)
	}
}
