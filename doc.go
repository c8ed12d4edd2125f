// Package vivid procedurally synthesizes raster artwork from a small set of
// discrete parameters: a prompt, a named style, a named palette, and a target
// resolution. No model, no network — output is fully determined by arithmetic
// over the seed string.
//
// # Quick Start
//
//	import "github.com/artgrid/vivid"
//
//	gen := vivid.NewGenerator()
//	art, err := gen.GenerateWithSeed(vivid.Request{
//	    Prompt:     "dreamscape",
//	    Style:      "Polygon Nebula",
//	    Palette:    "Aurora",
//	    Resolution: "1024x1024",
//	}, "0")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	png, _ := art.EncodePNG()
//
// # Determinism
//
// A generation is a pure function of its seed string. GenerateWithSeed gives
// the caller full control of the seed and reproduces byte-identical surfaces
// across runs; Generate mixes a wall-clock component into the seed so that
// interactive callers get a fresh image on every request.
//
// # Architecture
//
// Data flows strictly downward:
//
//	Generator → style sequence → layer renderers → (Rand, Pixmap)
//
// Each layer renderer consumes the shared Rand in a fixed order and draws
// into the single Pixmap owned by the in-flight generation. Nothing in the
// core suspends, retries, or locks; callers wanting parallelism run one
// generation per surface.
package vivid

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
