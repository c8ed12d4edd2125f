package vivid

// Style identifies one of the named layer compositions. It is a closed enum:
// the five user-facing styles plus StyleFreeform, the sequence used when a
// caller names a style the registry does not know.
type Style uint8

const (
	StylePolygonNebula Style = iota
	StyleFractalBloom
	StyleChromaticStorm
	StyleSynthwaveHorizon
	StyleLiquidAurora

	// StyleFreeform is the fallback composition for unknown style names.
	StyleFreeform
)

var styleNames = map[Style]string{
	StylePolygonNebula:    "Polygon Nebula",
	StyleFractalBloom:     "Fractal Bloom",
	StyleChromaticStorm:   "Chromatic Storm",
	StyleSynthwaveHorizon: "Synthwave Horizon",
	StyleLiquidAurora:     "Liquid Aurora",
	StyleFreeform:         "Freeform",
}

// styleSequences maps each style to its ordered layer calls. Every
// generation runs an implicit leading Backdrop before this sequence, and
// every sequence contains Scanline exactly once.
//
// Synthwave Horizon is the deliberate asymmetry: its Scanline runs
// immediately after Fluid and nothing is drawn afterward. Every other style
// applies Scanline as the final operation.
var styleSequences = map[Style][]Layer{
	StylePolygonNebula:    {LayerPolygon, LayerParticle, LayerScanline},
	StyleFractalBloom:     {LayerFluid, LayerParticle, LayerScanline},
	StyleChromaticStorm:   {LayerPolygon, LayerFluid, LayerParticle, LayerScanline},
	StyleSynthwaveHorizon: {LayerFluid, LayerScanline},
	StyleLiquidAurora:     {LayerFluid, LayerParticle, LayerScanline},
	StyleFreeform:         {LayerFluid, LayerPolygon, LayerParticle, LayerScanline},
}

var styleByName = func() map[string]Style {
	m := make(map[string]Style, len(styleNames))
	for s, name := range styleNames {
		m[name] = s
	}
	return m
}()

// Name returns the style's registry name.
func (s Style) Name() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return styleNames[StyleFreeform]
}

// Sequence returns a copy of the style's ordered layer calls, excluding the
// implicit leading Backdrop.
func (s Style) Sequence() []Layer {
	seq, ok := styleSequences[s]
	if !ok {
		seq = styleSequences[StyleFreeform]
	}
	out := make([]Layer, len(seq))
	copy(out, seq)
	return out
}

// StyleFromName looks up a style by its exact name. The second return value
// reports whether the name was known; callers in lenient mode use
// StyleFreeform when it is false.
func StyleFromName(name string) (Style, bool) {
	s, ok := styleByName[name]
	if !ok {
		return StyleFreeform, false
	}
	return s, true
}

// Styles returns the five user-selectable styles in declaration order.
// StyleFreeform is excluded; it is reachable only through unknown names.
func Styles() []Style {
	return []Style{
		StylePolygonNebula,
		StyleFractalBloom,
		StyleChromaticStorm,
		StyleSynthwaveHorizon,
		StyleLiquidAurora,
	}
}
