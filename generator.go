package vivid

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Request describes one generation. It is constructed once per invocation
// and never mutated. The prompt is decorative: it contributes only to seed
// entropy and is otherwise unused by the algorithm.
type Request struct {
	Prompt     string `json:"prompt"`
	Style      string `json:"style"`
	Palette    string `json:"palette"`
	Resolution string `json:"resolution"`
}

// SurfaceProvider supplies the pixel surface for a generation. Returning
// nil signals that no surface could be acquired. The generator resizes
// whatever is returned, so providers may pool and reuse buffers as long as
// they hand each concurrent generation its own surface.
type SurfaceProvider func(width, height int) *Pixmap

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithStrictStyle makes unknown style names an InvalidParameterError
// instead of falling back to the freeform sequence.
func WithStrictStyle() GeneratorOption {
	return func(g *Generator) { g.strictStyle = true }
}

// WithSurfaceProvider replaces the default allocate-per-generation surface
// source.
func WithSurfaceProvider(p SurfaceProvider) GeneratorOption {
	return func(g *Generator) { g.provider = p }
}

// WithClock replaces the wall clock used for seed-time components and
// artwork timestamps. Intended for tests.
func WithClock(now func() time.Time) GeneratorOption {
	return func(g *Generator) { g.now = now }
}

// Generator orchestrates the rendering pipeline: it resolves the request's
// references, seeds the generator, sizes the surface, and runs the style's
// layer sequence. A Generator is stateless between calls and safe for
// concurrent use as long as its SurfaceProvider hands out distinct surfaces.
type Generator struct {
	strictStyle bool
	provider    SurfaceProvider
	now         func() time.Time
}

// NewGenerator creates a generator with the given options.
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{
		provider: func(w, h int) *Pixmap { return NewPixmap(w, h) },
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate renders the request with a wall-clock seed component, so
// identical parameters produce a fresh image on every call. Interactive
// callers use this entry point; tests use GenerateWithSeed.
func (g *Generator) Generate(req Request) (*Artwork, error) {
	component := strconv.FormatInt(g.now().UnixMilli(), 10)
	return g.GenerateWithSeed(req, component)
}

// GenerateWithSeed renders the request with an explicit seed component and
// is fully reproducible: a fixed request and component yield a byte-identical
// surface on every run.
//
// Generation is atomic — it either completes or fails before any drawing
// begins. There are no retries and no cancellation inside the pipeline.
func (g *Generator) GenerateWithSeed(req Request, seedComponent string) (*Artwork, error) {
	style, known := StyleFromName(req.Style)
	if !known && g.strictStyle {
		return nil, &InvalidParameterError{Param: "style", Value: req.Style}
	}
	pal, ok := PaletteFromName(req.Palette)
	if !ok {
		return nil, &InvalidParameterError{Param: "palette", Value: req.Palette}
	}
	res, ok := ResolutionFromName(req.Resolution)
	if !ok {
		return nil, &InvalidParameterError{Param: "resolution", Value: req.Resolution}
	}

	// The seed uses the requested style text, not the resolved style, so an
	// unknown name still contributes its own entropy on the fallback path.
	seed := req.Prompt + "-" + req.Style + "-" + pal.Name + "-" + seedComponent
	rnd := NewRand(seed)

	surf := g.provider(res.Width, res.Height)
	if surf == nil {
		return nil, ErrSurfaceUnavailable
	}
	surf.Resize(res.Width, res.Height)

	log := Logger()
	log.Debug("rendering layer", "layer", LayerBackdrop.String())
	LayerBackdrop.render(rnd, surf, pal)
	for _, layer := range style.Sequence() {
		log.Debug("rendering layer", "layer", layer.String())
		layer.render(rnd, surf, pal)
	}

	art := &Artwork{
		ID:        uuid.NewString(),
		CreatedAt: g.now(),
		Request:   req,
		Style:     style,
		Surface:   surf,
	}
	log.Info("artwork generated",
		"id", art.ID,
		"style", style.Name(),
		"palette", pal.Name,
		"resolution", res.Name)
	return art, nil
}
