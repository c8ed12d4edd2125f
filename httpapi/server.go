// Package httpapi exposes the generator and gallery over HTTP.
//
// The handler is the synchronous boundary the core leaves to its callers:
// every request generates into a fresh surface, so concurrent requests never
// share a pixel buffer or a random generator.
package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/artgrid/vivid"
	"github.com/artgrid/vivid/gallery"
)

// Server handles the artwork API. Create one with NewServer and mount its
// Handler.
type Server struct {
	gen   *vivid.Generator
	store *gallery.Store
	log   *slog.Logger
}

// NewServer creates a server around the given generator and gallery.
// A nil logger disables logging.
func NewServer(gen *vivid.Generator, store *gallery.Store, log *slog.Logger) *Server {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Server{gen: gen, store: store, log: log}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Post("/artworks", s.createArtwork)
		r.Get("/artworks", s.listArtworks)
		r.Get("/artworks/{id}", s.getArtwork)
		r.Get("/artworks/{id}/image", s.getArtworkImage)
		r.Delete("/artworks/{id}", s.deleteArtwork)

		r.Get("/styles", s.listStyles)
		r.Get("/palettes", s.listPalettes)
		r.Get("/resolutions", s.listResolutions)
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}

type generateRequest struct {
	vivid.Request
	// Seed, when present, replaces the wall-clock seed component and makes
	// the generation reproducible.
	Seed *string `json:"seed,omitempty"`
}

type artworkResponse struct {
	ID         string    `json:"id"`
	CreatedAt  time.Time `json:"createdAt"`
	Prompt     string    `json:"prompt"`
	Style      string    `json:"style"`
	Palette    string    `json:"palette"`
	Resolution string    `json:"resolution"`
	FileName   string    `json:"fileName"`
	Image      string    `json:"image,omitempty"` // PNG data URI
}

func toResponse(a *vivid.Artwork) artworkResponse {
	return artworkResponse{
		ID:         a.ID,
		CreatedAt:  a.CreatedAt,
		Prompt:     a.Request.Prompt,
		Style:      a.Request.Style,
		Palette:    a.Request.Palette,
		Resolution: a.Request.Resolution,
		FileName:   a.FileName(),
	}
}

func toResponseWithImage(a *vivid.Artwork) (artworkResponse, error) {
	resp := toResponse(a)
	uri, err := a.DataURI()
	if err != nil {
		return resp, err
	}
	resp.Image = uri
	return resp, nil
}

func (s *Server) createArtwork(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		s.log.Warn("createArtwork: invalid request body", "error", err)
		return
	}

	start := time.Now()
	var (
		art *vivid.Artwork
		err error
	)
	if req.Seed != nil {
		art, err = s.gen.GenerateWithSeed(req.Request, *req.Seed)
	} else {
		art, err = s.gen.Generate(req.Request)
	}
	if err != nil {
		var invalid *vivid.InvalidParameterError
		if errors.As(err, &invalid) {
			writeError(w, http.StatusBadRequest, invalid.Error())
			return
		}
		if errors.Is(err, vivid.ErrSurfaceUnavailable) {
			writeError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "generation failed")
		s.log.Error("createArtwork: generation failed", "error", err)
		return
	}
	observeGeneration(art.Style.Name(), time.Since(start))
	s.log.Info("artwork generated",
		"id", art.ID,
		"style", art.Style.Name(),
		"resolution", art.Request.Resolution,
		"duration", time.Since(start))

	s.store.Add(art)

	resp, err := toResponseWithImage(art)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "encoding failed")
		s.log.Error("createArtwork: encoding failed", "error", err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) listArtworks(w http.ResponseWriter, _ *http.Request) {
	arts := s.store.List()
	out := make([]artworkResponse, 0, len(arts))
	for _, a := range arts {
		out = append(out, toResponse(a))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getArtwork(w http.ResponseWriter, r *http.Request) {
	a, ok := s.store.Get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "artwork not found")
		return
	}
	resp, err := toResponseWithImage(a)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "encoding failed")
		s.log.Error("getArtwork: encoding failed", "error", err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) getArtworkImage(w http.ResponseWriter, r *http.Request) {
	a, ok := s.store.Get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "artwork not found")
		return
	}
	data, err := a.EncodePNG()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "encoding failed")
		s.log.Error("getArtworkImage: encoding failed", "error", err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", a.FileName()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) deleteArtwork(w http.ResponseWriter, r *http.Request) {
	if !s.store.Remove(chi.URLParam(r, "id")) {
		writeError(w, http.StatusNotFound, "artwork not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type styleInfo struct {
	Name   string   `json:"name"`
	Layers []string `json:"layers"`
}

func (s *Server) listStyles(w http.ResponseWriter, _ *http.Request) {
	styles := vivid.Styles()
	out := make([]styleInfo, 0, len(styles))
	for _, st := range styles {
		seq := st.Sequence()
		layers := make([]string, 0, len(seq)+1)
		layers = append(layers, vivid.LayerBackdrop.String())
		for _, l := range seq {
			layers = append(layers, l.String())
		}
		out = append(out, styleInfo{Name: st.Name(), Layers: layers})
	}
	writeJSON(w, http.StatusOK, out)
}

type paletteInfo struct {
	Name   string    `json:"name"`
	Colors [3]string `json:"colors"`
}

func (s *Server) listPalettes(w http.ResponseWriter, _ *http.Request) {
	pals := vivid.Palettes()
	out := make([]paletteInfo, 0, len(pals))
	for _, p := range pals {
		out = append(out, paletteInfo{Name: p.Name, Colors: p.Colors})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) listResolutions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, vivid.Resolutions())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
