package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artgrid/vivid"
	"github.com/artgrid/vivid/gallery"
)

func newTestServer(t *testing.T) (*Server, http.Handler) {
	t.Helper()
	s := NewServer(vivid.NewGenerator(), gallery.NewStore(10), nil)
	return s, s.Handler()
}

func postArtwork(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/artworks", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

const validBody = `{
	"prompt": "dreamscape",
	"style": "Polygon Nebula",
	"palette": "Aurora",
	"resolution": "1280x720",
	"seed": "0"
}`

func TestCreateArtwork(t *testing.T) {
	_, h := newTestServer(t)

	w := postArtwork(t, h, validBody)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp artworkResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Polygon Nebula", resp.Style)
	assert.Equal(t, "1280x720", resp.Resolution)
	assert.Regexp(t, `^data:image/png;base64,`, resp.Image)
	assert.Regexp(t, `^polygon-nebula-[0-9a-f]{8}\.png$`, resp.FileName)
}

func TestCreateArtworkSeededIsReproducible(t *testing.T) {
	_, h := newTestServer(t)

	var images [2]string
	for i := range images {
		w := postArtwork(t, h, validBody)
		require.Equal(t, http.StatusCreated, w.Code)
		var resp artworkResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		images[i] = resp.Image
	}
	assert.Equal(t, images[0], images[1], "explicit seed must reproduce byte-identical payloads")
}

func TestCreateArtworkUnknownPalette(t *testing.T) {
	srv, h := newTestServer(t)

	w := postArtwork(t, h, `{"style": "Polygon Nebula", "palette": "Vantablack", "resolution": "1280x720"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "palette")
	assert.Equal(t, 0, srv.store.Len(), "failed generation must not reach the gallery")
}

func TestCreateArtworkUnknownResolution(t *testing.T) {
	_, h := newTestServer(t)

	w := postArtwork(t, h, `{"style": "Polygon Nebula", "palette": "Aurora", "resolution": "640x480"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "resolution")
}

func TestCreateArtworkInvalidBody(t *testing.T) {
	_, h := newTestServer(t)

	w := postArtwork(t, h, `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListArtworksNewestFirst(t *testing.T) {
	_, h := newTestServer(t)

	seeds := []string{"1", "2"}
	ids := make([]string, 0, len(seeds))
	for _, seed := range seeds {
		w := postArtwork(t, h, `{"style": "Synthwave Horizon", "palette": "Neon Noir", "resolution": "720x1280", "seed": "`+seed+`"}`)
		require.Equal(t, http.StatusCreated, w.Code)
		var resp artworkResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		ids = append(ids, resp.ID)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/artworks", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var list []artworkResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, ids[1], list[0].ID)
	assert.Equal(t, ids[0], list[1].ID)
	assert.Empty(t, list[0].Image, "listing omits image payloads")
}

func TestGetArtworkImage(t *testing.T) {
	_, h := newTestServer(t)

	w := postArtwork(t, h, validBody)
	require.Equal(t, http.StatusCreated, w.Code)
	var resp artworkResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	req := httptest.NewRequest(http.MethodGet, "/api/artworks/"+resp.ID+"/image", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	disposition := rec.Header().Get("Content-Disposition")
	assert.Regexp(t, regexp.MustCompile(`polygon-nebula-[0-9a-f]{8}\.png`), disposition)
	// PNG magic bytes
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))
}

func TestDeleteArtwork(t *testing.T) {
	_, h := newTestServer(t)

	w := postArtwork(t, h, validBody)
	require.Equal(t, http.StatusCreated, w.Code)
	var resp artworkResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	req := httptest.NewRequest(http.MethodDelete, "/api/artworks/"+resp.ID, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/artworks/"+resp.ID, nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetArtworkMissing(t *testing.T) {
	_, h := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/artworks/ghost", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRegistryListings(t *testing.T) {
	_, h := newTestServer(t)

	t.Run("styles", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/styles", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var styles []styleInfo
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &styles))
		require.Len(t, styles, 5)
		for _, s := range styles {
			assert.Equal(t, "backdrop", s.Layers[0], "every style starts with the backdrop")
		}
	})

	t.Run("palettes", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/palettes", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var pals []paletteInfo
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pals))
		assert.Len(t, pals, 6)
	})

	t.Run("resolutions", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/resolutions", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var res []vivid.Resolution
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Len(t, res, 3)
	})
}

func TestHealthz(t *testing.T) {
	_, h := newTestServer(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
