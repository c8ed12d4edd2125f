// Package blend implements the compositing operators used by the rendering
// pipeline.
//
// All operations work with straight (non-premultiplied) alpha values in the
// range 0-255, matching the pixel buffer's storage format. Only the operators
// the layer renderers actually reach for are implemented: source-over for
// everything, plus (additive "lighter") for the polygon layer, and copy for
// backdrop gradient fills.
//
// Reference: Porter-Duff, "Compositing Digital Images" (1984).
package blend

// Mode selects a compositing operator.
type Mode uint8

const (
	// SourceOver composites source over destination (default).
	SourceOver Mode = iota

	// Plus adds source to destination, clamped to 255. This is the
	// canvas "lighter" operator.
	Plus

	// Copy replaces destination with source.
	Copy
)

// Func is the signature for blend operations. All values are straight
// alpha, 0-255. Parameters are source then destination; the result is the
// blended color.
type Func func(sr, sg, sb, sa, dr, dg, db, da uint8) (r, g, b, a uint8)

// ForMode returns the blend function for the given mode.
// Returns sourceOver for unknown modes.
func ForMode(mode Mode) Func {
	switch mode {
	case Plus:
		return plus
	case Copy:
		return copySrc
	default:
		return sourceOver
	}
}

// sourceOver composites straight-alpha source over destination:
// outA = sa + da*(1-sa), outC = (sC*sa + dC*da*(1-sa)) / outA.
func sourceOver(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	a := uint32(sa)
	wd := uint32(da) * (255 - a) / 255 // destination weight
	oa := a + wd                       // never exceeds 255
	if oa == 0 {
		return 0, 0, 0, 0
	}
	r := (uint32(sr)*a + uint32(dr)*wd) / oa
	g := (uint32(sg)*a + uint32(dg)*wd) / oa
	b := (uint32(sb)*a + uint32(db)*wd) / oa
	return uint8(r), uint8(g), uint8(b), uint8(oa)
}

// plus adds the alpha-weighted source to the destination, clamping each
// channel to 255.
func plus(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	a := uint32(sa)
	r := uint32(dr) + uint32(sr)*a/255
	g := uint32(dg) + uint32(sg)*a/255
	b := uint32(db) + uint32(sb)*a/255
	oa := uint32(da) + a
	return clamp8(r), clamp8(g), clamp8(b), clamp8(oa)
}

// copySrc replaces the destination with the source.
func copySrc(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return sr, sg, sb, sa
}

func clamp8(x uint32) uint8 {
	if x > 255 {
		return 255
	}
	return uint8(x)
}
