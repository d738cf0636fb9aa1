package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aretw0/vaultmap/pkg/adapters/memory"
	"github.com/aretw0/vaultmap/pkg/observability"
	"github.com/aretw0/vaultmap/pkg/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const source = "static const uint32_t vault_data[1][6] = {\n{\n" +
	"0xff808080, 0x00000000, 0xff112233, \n" +
	"0xffffffff, 0xff808080, 0xff112233\n" +
	"}\n};\n"

func newHandler(t *testing.T, opts ...Option) http.Handler {
	t.Helper()
	svc := service.New(service.WithCache(memory.NewStore(0)))
	h, err := NewHandler(svc, opts...)
	require.NoError(t, err)
	return h
}

func jsonBody(t *testing.T, v any) *strings.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return strings.NewReader(string(b))
}

func TestLoadSpec(t *testing.T) {
	doc, err := LoadSpec(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, doc.Paths.Find("/convert"))
	assert.NotNil(t, doc.Paths.Find("/colors"))
}

func TestServer_Convert(t *testing.T) {
	h := newHandler(t)

	req := httptest.NewRequest("POST", "/convert", jsonBody(t, service.Request{
		Source: source,
		Glyphs: map[string]string{"#332211": "~"},
	}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp service.Response
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "MAP\nx ~\nXx~\nENDMAP", resp.Map)
	assert.False(t, resp.Cached)
	assert.Equal(t, 3, resp.Dimensions.Width)
}

func TestServer_Convert_Cached(t *testing.T) {
	h := newHandler(t)
	body := service.Request{Source: source, Glyphs: map[string]string{"#332211": "~"}}

	for i, cached := range []bool{false, true} {
		req := httptest.NewRequest("POST", "/convert", jsonBody(t, body))
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code, "request %d", i)
		var resp service.Response
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, cached, resp.Cached, "request %d", i)
	}
}

func TestServer_Convert_MissingGlyph(t *testing.T) {
	h := newHandler(t)

	req := httptest.NewRequest("POST", "/convert", jsonBody(t, service.Request{Source: source}))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var resp errorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "#332211", string(resp.Missing[0]))
	assert.Len(t, resp.Missing, 1)
}

func TestServer_Convert_PlainText(t *testing.T) {
	h := newHandler(t)
	plain := "{\n{\n0xff808080, 0xff0080ff\n}\n};\n"

	req := httptest.NewRequest("POST", "/convert", strings.NewReader(plain))
	req.Header.Set("Content-Type", "text/plain")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp service.Response
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "MAP\nx@\nENDMAP", resp.Map)
}

func TestServer_Convert_QueryParameters(t *testing.T) {
	h := newHandler(t)
	noMarker := "0xff808080, 0xff808080\n"

	t.Run("strict rejects missing marker", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/convert", jsonBody(t, service.Request{Source: noMarker}))
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("lenient accepts missing marker", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/convert?lenient=true", jsonBody(t, service.Request{Source: noMarker}))
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		var resp service.Response
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "MAP\nxx\nENDMAP", resp.Map)
	})

	t.Run("bad frame", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/convert?frame=abc", jsonBody(t, service.Request{Source: source}))
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("frame out of range", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/convert?frame=3", jsonBody(t, service.Request{Source: source}))
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestServer_InvalidBody(t *testing.T) {
	h := newHandler(t)

	req := httptest.NewRequest("POST", "/convert", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServer_Colors(t *testing.T) {
	h := newHandler(t)

	req := httptest.NewRequest("POST", "/colors", jsonBody(t, service.Request{Source: source}))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var colors []struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&colors))
	require.Len(t, colors, 4)
	assert.Equal(t, "Dark Gray", colors[0].Name)
	assert.Equal(t, 2, colors[0].Count)
	assert.Equal(t, "Transparent", colors[1].Name)
	assert.Equal(t, "#332211", colors[2].Name)
	assert.Equal(t, "White", colors[3].Name)
}

func TestServer_Palette(t *testing.T) {
	h := newHandler(t)

	req := httptest.NewRequest("GET", "/palette", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp paletteResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Len(t, resp.Colors, 27)
	assert.Len(t, resp.Suggestions, 27)
	assert.Equal(t, "x", string(resp.Suggestions["Dark Gray"].Glyph))
}

func TestServer_StaticRoutes(t *testing.T) {
	h := newHandler(t, WithMetrics(observability.NewMetrics()))

	for _, path := range []string{"/healthz", "/openapi.yaml", "/metrics"} {
		req := httptest.NewRequest("GET", path, nil)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestServer_CORS(t *testing.T) {
	h := newHandler(t)

	req := httptest.NewRequest("OPTIONS", "/convert", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
