package vivid

// Point represents a 2D point with float64 coordinates.
type Point struct {
	X, Y float64
}
