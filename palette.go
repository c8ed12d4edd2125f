package vivid

import "fmt"

// Palette is a named set of exactly three hex RGB colors used to tint all
// layers in a generation.
type Palette struct {
	Name   string
	Colors [3]string // "#RRGGBB"

	rgba [3]RGBA
}

// ColorAt returns the parsed palette color at index i, cycling modulo 3.
// Layer renderers use the cycle to pick blob and polygon tints by index.
func (p Palette) ColorAt(i int) RGBA {
	return p.rgba[i%3]
}

// newPalette parses the hex triple up front. Malformed colors are a
// programming error in the registry table, hence the panic.
func newPalette(name string, c0, c1, c2 string) Palette {
	p := Palette{Name: name, Colors: [3]string{c0, c1, c2}}
	for i, s := range p.Colors {
		if !isHexRGB(s) {
			panic(fmt.Sprintf("vivid: palette %q color %d is not #RRGGBB: %q", name, i, s))
		}
		p.rgba[i] = Hex(s)
	}
	return p
}

// palettes is the immutable palette registry, built once at init and never
// mutated afterward.
var palettes = []Palette{
	newPalette("Aurora", "#5EEAD4", "#818CF8", "#F0ABFC"),
	newPalette("Solar Burst", "#F97316", "#FACC15", "#DC2626"),
	newPalette("Jade Circuit", "#10B981", "#34D399", "#064E3B"),
	newPalette("Neon Noir", "#FF2E88", "#00F0FF", "#1A1A2E"),
	newPalette("Sunset Bloom", "#FB7185", "#FDBA74", "#7C2D12"),
	newPalette("Digital Forest", "#22C55E", "#A3E635", "#14532D"),
}

var paletteByName = func() map[string]Palette {
	m := make(map[string]Palette, len(palettes))
	for _, p := range palettes {
		m[p.Name] = p
	}
	return m
}()

// PaletteFromName looks up a palette by its exact name.
func PaletteFromName(name string) (Palette, bool) {
	p, ok := paletteByName[name]
	return p, ok
}

// Palettes returns the declared palettes in registry order.
func Palettes() []Palette {
	out := make([]Palette, len(palettes))
	copy(out, palettes)
	return out
}
