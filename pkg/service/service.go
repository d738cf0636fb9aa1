// Package service runs conversions for surfaces that cannot prompt.
//
// Glyphs come from the request's override table, then from the suggested
// defaults. Requests that leave a colour without a glyph fail with a
// *MissingGlyphsError listing every such colour, so a client can fill them
// in and retry in one round trip.
package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/aretw0/vaultmap"
	"github.com/aretw0/vaultmap/pkg/domain"
	"github.com/aretw0/vaultmap/pkg/glyph"
	"github.com/aretw0/vaultmap/pkg/observability"
	"github.com/aretw0/vaultmap/pkg/palette"
	"github.com/aretw0/vaultmap/pkg/ports"
)

// Request is one conversion job.
type Request struct {
	Source  string            `json:"source" mapstructure:"source"`
	Glyphs  map[string]string `json:"glyphs,omitempty" mapstructure:"glyphs"`
	Frame   int               `json:"frame,omitempty" mapstructure:"frame"`
	Lenient bool              `json:"lenient,omitempty" mapstructure:"lenient"`
}

// Response is a rendered map plus whether it came from the cache.
type Response struct {
	domain.RenderedMap
	Cached bool `json:"cached"`
}

// MissingGlyphsError reports colours that have no glyph.
type MissingGlyphsError struct {
	Colors []domain.ColorName
}

func (e *MissingGlyphsError) Error() string {
	names := make([]string, len(e.Colors))
	for i, c := range e.Colors {
		names[i] = string(c)
	}
	return fmt.Sprintf("no glyph for %s", strings.Join(names, ", "))
}

func (e *MissingGlyphsError) Unwrap() error {
	return domain.ErrNoGlyph
}

// Service converts exports on behalf of HTTP and MCP clients.
type Service struct {
	cache   ports.ResultCache
	metrics *observability.Metrics
	logger  *slog.Logger
	base    []vaultmap.Option
	tables  string
}

// Option defines a functional option for configuring the Service.
type Option func(*Service)

// WithCache enables result caching.
func WithCache(c ports.ResultCache) Option {
	return func(s *Service) {
		s.cache = c
	}
}

// WithMetrics records conversions on m.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithConverterOptions applies opts to every converter the service builds.
func WithConverterOptions(opts ...vaultmap.Option) Option {
	return func(s *Service) {
		s.base = append(s.base, opts...)
	}
}

// New creates a Service.
func New(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s.tables = TablesDigest(vaultmap.New(s.base...))
	return s
}

// TablesDigest fingerprints the colour and suggestion tables of conv, so
// services configured with different tables never share cache entries.
func TablesDigest(conv *vaultmap.Converter) string {
	// Entries are sorted and json.Marshal sorts map keys.
	b, _ := json.Marshal(struct {
		Colors      []palette.Entry                         `json:"c"`
		Suggestions map[domain.ColorName]domain.Suggestion `json:"s"`
	}{conv.Palette().Entries(), conv.Resolver(nil).Suggestions})
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:8])
}

func (s *Service) converter(req Request) *vaultmap.Converter {
	opts := append([]vaultmap.Option{}, s.base...)
	opts = append(opts,
		vaultmap.WithFrame(req.Frame),
		vaultmap.WithLenientParse(req.Lenient),
		vaultmap.WithLogger(s.logger),
	)
	if s.metrics != nil {
		opts = append(opts, vaultmap.WithHooks(s.metrics.Hooks()))
	}
	return vaultmap.New(opts...)
}

// Convert renders req. surface labels the metrics ("http", "mcp").
func (s *Service) Convert(ctx context.Context, surface string, req Request) (*Response, error) {
	resp, err := s.convert(ctx, req)
	if s.metrics != nil {
		s.metrics.Conversion(surface, err)
	}
	if err != nil {
		s.logger.Warn("Conversion failed", "surface", surface, "error", err)
	}
	return resp, err
}

func (s *Service) convert(ctx context.Context, req Request) (*Response, error) {
	if strings.TrimSpace(req.Source) == "" {
		return nil, domain.ErrEmptyInput
	}

	key := s.tables + ":" + CacheKey(req)
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key)
		switch {
		case err == nil:
			s.cacheLookup(true)
			return &Response{RenderedMap: *cached, Cached: true}, nil
		case errors.Is(err, domain.ErrCacheMiss):
			s.cacheLookup(false)
		default:
			s.logger.Warn("Cache lookup failed", "error", err)
		}
	}

	conv := s.converter(req)
	a, err := conv.Analyze(ctx, req.Source)
	if err != nil {
		return nil, err
	}

	fixed := overrides(req.Glyphs)
	if missing := fixed.Missing(conv.Resolver(fixed), a.Distinct); len(missing) > 0 {
		return nil, &MissingGlyphsError{Colors: missing}
	}

	res, err := conv.Finish(ctx, a, fixed)
	if err != nil {
		return nil, err
	}

	out := domain.RenderedMap{
		Map:         res.Text,
		Colors:      res.Distinct,
		Assignments: res.Assignments,
		Dimensions:  res.Dimensions,
	}
	if s.cache != nil {
		if err := s.cache.Put(ctx, key, &out); err != nil {
			s.logger.Warn("Cache store failed", "error", err)
		}
	}
	return &Response{RenderedMap: out}, nil
}

// Colors lists the distinct colours of req.Source without assigning glyphs.
func (s *Service) Colors(ctx context.Context, req Request) ([]vaultmap.ColorSummary, error) {
	if strings.TrimSpace(req.Source) == "" {
		return nil, domain.ErrEmptyInput
	}
	conv := s.converter(req)
	a, err := conv.Analyze(ctx, req.Source)
	if err != nil {
		return nil, err
	}
	return conv.Summarize(a), nil
}

func (s *Service) cacheLookup(hit bool) {
	if s.metrics != nil {
		s.metrics.Cache(hit)
	}
}

func overrides(in map[string]string) glyph.Fixed {
	out := make(glyph.Fixed, len(in))
	for k, v := range in {
		out[domain.ColorName(k)] = domain.Glyph(v)
	}
	return out
}

// CacheKey digests everything that determines the output of req.
func CacheKey(req Request) string {
	h := sha256.New()
	keys := make([]string, 0, len(req.Glyphs))
	for k := range req.Glyphs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([][2]string, len(keys))
	for i, k := range keys {
		pairs[i] = [2]string{k, req.Glyphs[k]}
	}
	// json.Marshal of strings, ints and bools cannot fail.
	b, _ := json.Marshal(struct {
		Source  string      `json:"s"`
		Frame   int         `json:"f"`
		Lenient bool        `json:"l"`
		Glyphs  [][2]string `json:"g"`
	}{req.Source, req.Frame, req.Lenient, pairs})
	h.Write(b)
	return hex.EncodeToString(h.Sum(nil))
}
