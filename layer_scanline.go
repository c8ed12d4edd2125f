package vivid

// scanlineFactor darkens even rows to simulate a retro display artifact.
const scanlineFactor = 0.95

// renderScanlines is the post-processing pass: a full read-modify-write
// sweep that scales the R, G, and B channels of every even-indexed row by
// scanlineFactor, clamped to the valid channel range. Alpha and odd rows
// are untouched. The pass consumes no randomness.
func renderScanlines(p *Pixmap) {
	for y := 0; y < p.Height(); y += 2 {
		p.ScaleRowRGB(y, scanlineFactor)
	}
}
