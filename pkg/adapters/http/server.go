package http

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/vaultmap/pkg/domain"
	"github.com/aretw0/vaultmap/pkg/glyph"
	"github.com/aretw0/vaultmap/pkg/observability"
	"github.com/aretw0/vaultmap/pkg/palette"
	"github.com/aretw0/vaultmap/pkg/service"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/oapi-codegen/runtime"
)

// MaxBodySize bounds an uploaded export.
const MaxBodySize = 4 << 20

//go:embed openapi.yaml
var rawSpec []byte

// Server serves the conversion API.
type Server struct {
	Service *service.Service
	Metrics *observability.Metrics
	Logger  *slog.Logger
}

// Option configures the handler.
type Option func(*Server)

// WithMetrics mounts /metrics.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Server) {
		s.Metrics = m
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// LoadSpec parses and validates the embedded OpenAPI document.
func LoadSpec(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("failed to load OpenAPI spec: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid OpenAPI spec: %w", err)
	}
	return doc, nil
}

// NewHandler creates the HTTP handler for svc.
func NewHandler(svc *service.Service, opts ...Option) (http.Handler, error) {
	if _, err := LoadSpec(context.Background()); err != nil {
		return nil, err
	}

	s := &Server{Service: svc}
	for _, opt := range opts {
		opt(s)
	}
	if s.Logger == nil {
		s.Logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, "ok\n")
	})
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(rawSpec)
	})
	r.Get("/palette", s.Palette)
	r.Post("/convert", s.Convert)
	r.Post("/colors", s.Colors)
	if s.Metrics != nil {
		r.Handle("/metrics", s.Metrics.Handler())
	}

	return enableCORS(r), nil
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type errorResponse struct {
	Error   string             `json:"error"`
	Missing []domain.ColorName `json:"missing,omitempty"`
}

// Convert handles POST /convert.
func (s *Server) Convert(w http.ResponseWriter, r *http.Request) {
	req, err := s.decode(w, r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		s.Logger.Warn("Convert: Invalid request", "error", err)
		return
	}

	resp, err := s.Service.Convert(r.Context(), "http", req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Colors handles POST /colors.
func (s *Server) Colors(w http.ResponseWriter, r *http.Request) {
	req, err := s.decode(w, r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		s.Logger.Warn("Colors: Invalid request", "error", err)
		return
	}

	colors, err := s.Service.Colors(r.Context(), req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, colors)
}

type paletteResponse struct {
	Colors      []palette.Entry                         `json:"colors"`
	Suggestions map[domain.ColorName]domain.Suggestion `json:"suggestions"`
}

// Palette handles GET /palette.
func (s *Server) Palette(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, paletteResponse{
		Colors:      palette.New(nil).Entries(),
		Suggestions: glyph.DefaultSuggestions,
	})
}

// decode reads a JSON request or a raw text/plain export, then applies the
// frame and lenient query parameters on top.
func (s *Server) decode(w http.ResponseWriter, r *http.Request) (service.Request, error) {
	var req service.Request
	body := http.MaxBytesReader(w, r.Body, MaxBodySize)

	if strings.HasPrefix(r.Header.Get("Content-Type"), "text/plain") {
		data, err := io.ReadAll(body)
		if err != nil {
			return req, fmt.Errorf("read body: %w", err)
		}
		req.Source = string(data)
	} else if err := json.NewDecoder(body).Decode(&req); err != nil {
		return req, fmt.Errorf("invalid request body: %w", err)
	}

	var frame *int
	if err := runtime.BindQueryParameter("form", true, false, "frame", r.URL.Query(), &frame); err != nil {
		return req, fmt.Errorf("invalid frame: %w", err)
	}
	if frame != nil {
		req.Frame = *frame
	}
	var lenient *bool
	if err := runtime.BindQueryParameter("form", true, false, "lenient", r.URL.Query(), &lenient); err != nil {
		return req, fmt.Errorf("invalid lenient: %w", err)
	}
	if lenient != nil {
		req.Lenient = *lenient
	}
	return req, nil
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	var missing *service.MissingGlyphsError
	switch {
	case errors.As(err, &missing):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error(), Missing: missing.Colors})
	case errors.Is(err, domain.ErrEmptyInput),
		errors.Is(err, domain.ErrMarkerNotFound),
		errors.Is(err, domain.ErrMalformedCode),
		errors.Is(err, domain.ErrFrameOutOfRange):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		s.Logger.Error("Conversion failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Response encode failed", "error", err)
	}
}
