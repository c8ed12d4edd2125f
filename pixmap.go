package vivid

import (
	"image"
	"image/color"

	"github.com/artgrid/vivid/internal/blend"
)

// Pixmap represents a rectangular pixel buffer. Pixels are stored as
// straight-alpha RGBA, 4 bytes per pixel.
//
// A Pixmap is the mutable surface every layer renderer draws into. It is
// exclusively owned by one in-flight generation: the core places no lock
// inside the pipeline and assumes single-writer access. Callers wanting
// concurrent generations allocate one Pixmap per generation.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// CompositeOp selects how source colors combine with the surface.
type CompositeOp uint8

const (
	// OpOver is standard source-over compositing (default).
	OpOver CompositeOp = iota
	// OpPlus is additive "lighter" compositing.
	OpPlus
	// OpCopy replaces destination pixels outright.
	OpCopy
)

// mode maps a CompositeOp to its blend operator.
func (op CompositeOp) mode() blend.Mode {
	switch op {
	case OpPlus:
		return blend.Plus
	case OpCopy:
		return blend.Copy
	default:
		return blend.SourceOver
	}
}

// NewPixmap creates a new pixmap with the given dimensions.
// Non-positive dimensions are clamped to 1.
func NewPixmap(width, height int) *Pixmap {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (straight-alpha RGBA).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// Resize changes the pixmap dimensions, discarding prior contents.
// The existing allocation is reused when large enough.
func (p *Pixmap) Resize(width, height int) {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	n := width * height * 4
	if cap(p.data) >= n {
		p.data = p.data[:n]
		clear(p.data)
	} else {
		p.data = make([]uint8, n)
	}
	p.width = width
	p.height = height
}

// SetPixel sets the color of a single pixel, replacing what was there.
// Out-of-bounds coordinates are silently ignored.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = uint8(clamp255(c.R * 255))
	p.data[i+1] = uint8(clamp255(c.G * 255))
	p.data[i+2] = uint8(clamp255(c.B * 255))
	p.data[i+3] = uint8(clamp255(c.A * 255))
}

// GetPixel returns the color of a single pixel.
// Out-of-bounds coordinates return Transparent.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return RGBA{
		R: float64(p.data[i+0]) / 255,
		G: float64(p.data[i+1]) / 255,
		B: float64(p.data[i+2]) / 255,
		A: float64(p.data[i+3]) / 255,
	}
}

// BlendPixel composites c onto the pixel at (x, y) using op.
// Out-of-bounds coordinates are silently ignored.
func (p *Pixmap) BlendPixel(x, y int, c RGBA, op CompositeOp) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	sr := uint8(clamp255(c.R * 255))
	sg := uint8(clamp255(c.G * 255))
	sb := uint8(clamp255(c.B * 255))
	sa := uint8(clamp255(c.A * 255))

	i := (y*p.width + x) * 4
	f := blend.ForMode(op.mode())
	r, g, b, a := f(sr, sg, sb, sa, p.data[i+0], p.data[i+1], p.data[i+2], p.data[i+3])
	p.data[i+0] = r
	p.data[i+1] = g
	p.data[i+2] = b
	p.data[i+3] = a
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	r := uint8(clamp255(c.R * 255))
	g := uint8(clamp255(c.G * 255))
	b := uint8(clamp255(c.B * 255))
	a := uint8(clamp255(c.A * 255))

	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// ScaleRowRGB multiplies the R, G, and B channels of row y by factor,
// clamping to the valid channel range. Alpha is untouched. Out-of-range
// rows are ignored.
func (p *Pixmap) ScaleRowRGB(y int, factor float64) {
	if y < 0 || y >= p.height {
		return
	}
	row := p.data[y*p.width*4 : (y+1)*p.width*4]
	for i := 0; i < len(row); i += 4 {
		row[i+0] = uint8(clamp255(float64(row[i+0]) * factor))
		row[i+1] = uint8(clamp255(float64(row[i+1]) * factor))
		row[i+2] = uint8(clamp255(float64(row[i+2]) * factor))
	}
}

// ToImage converts the pixmap to an image.NRGBA copy.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	data := make([]uint8, len(p.data))
	copy(data, p.data)
	return &Pixmap{width: p.width, height: p.height, data: data}
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y).Color()
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
