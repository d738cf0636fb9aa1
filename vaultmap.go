package vaultmap

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/aretw0/vaultmap/pkg/domain"
	"github.com/aretw0/vaultmap/pkg/glyph"
	"github.com/aretw0/vaultmap/pkg/palette"
	"github.com/aretw0/vaultmap/pkg/parser"
	"github.com/aretw0/vaultmap/pkg/render"
)

// Converter is the high-level entry point of the library.
// It is safe to share between goroutines as long as its Prompter is;
// each Convert call owns its own glyph Registry.
type Converter struct {
	colors      *palette.Resolver
	suggestions map[domain.ColorName]domain.Suggestion
	prompter    glyph.Prompter
	frame       int
	lenient     bool
	hooks       domain.Hooks
	logger      *slog.Logger
}

// Option defines a functional option for configuring the Converter.
type Option func(*Converter)

// WithPrompter sets who answers glyph questions.
func WithPrompter(p glyph.Prompter) Option {
	return func(c *Converter) {
		c.prompter = p
	}
}

// WithColors replaces the colour table.
func WithColors(colors map[domain.ColorCode]domain.ColorName) Option {
	return func(c *Converter) {
		c.colors = palette.New(colors)
	}
}

// WithSuggestions replaces the default glyph table.
func WithSuggestions(s map[domain.ColorName]domain.Suggestion) Option {
	return func(c *Converter) {
		c.suggestions = s
	}
}

// WithFrame selects the frame of a multi-frame export (zero based).
func WithFrame(n int) Option {
	return func(c *Converter) {
		c.frame = n
	}
}

// WithLenientParse parses exports that lack the array marker instead of failing.
func WithLenientParse(lenient bool) Option {
	return func(c *Converter) {
		c.lenient = lenient
	}
}

// WithHooks registers observability hooks.
func WithHooks(h domain.Hooks) Option {
	return func(c *Converter) {
		c.hooks = h
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		c.logger = logger
	}
}

// New creates a Converter with the default tables.
func New(opts ...Option) *Converter {
	c := &Converter{}
	for _, opt := range opts {
		opt(c)
	}
	if c.colors == nil {
		c.colors = palette.New(nil)
	}
	if c.suggestions == nil {
		c.suggestions = glyph.DefaultSuggestions
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c
}

// Palette exposes the colour resolver in use.
func (c *Converter) Palette() *palette.Resolver {
	return c.colors
}

// Resolver returns a glyph resolver over the converter's suggestions,
// answering through p.
func (c *Converter) Resolver(p glyph.Prompter) *glyph.Resolver {
	return &glyph.Resolver{Suggestions: c.suggestions, Prompter: p}
}

// Analysis is the result of parsing and naming the colours of an export.
type Analysis struct {
	Dimensions domain.Dimensions             `json:"dimensions"`
	Codes      domain.Grid[domain.ColorCode] `json:"codes"`
	Colors     domain.Grid[domain.ColorName] `json:"colors"`
	Distinct   []domain.ColorName            `json:"distinct"`
}

// Result is a finished conversion.
type Result struct {
	Analysis
	Glyphs      domain.Grid[domain.Glyph]         `json:"glyphs"`
	Assignments map[domain.ColorName]domain.Glyph `json:"assignments"`
	Text        string                            `json:"map"`
}

// Analyze parses source and resolves its colours without assigning glyphs.
func (c *Converter) Analyze(ctx context.Context, source string) (*Analysis, error) {
	var popts []parser.Option
	if c.lenient {
		popts = append(popts, parser.WithLenient())
	}
	codes, err := parser.ParseFrame(source, c.frame, popts...)
	if err != nil {
		return nil, fmt.Errorf("parse export: %w", err)
	}
	c.emitGrid(ctx, c.hooks.OnParsed, domain.EventParsed, codes.Rows(), codes.Width(), codes.Cells(), 0)

	colors, err := c.colors.ResolveGrid(codes)
	if err != nil {
		return nil, fmt.Errorf("resolve colors: %w", err)
	}
	distinct := palette.Distinct(colors)
	c.emitGrid(ctx, c.hooks.OnColorResolved, domain.EventColorResolved, colors.Rows(), colors.Width(), colors.Cells(), len(distinct))

	c.logger.Debug("Export analyzed",
		"rows", codes.Rows(),
		"width", codes.Width(),
		"distinct", len(distinct),
		"rectangular", codes.IsRectangular(),
	)

	return &Analysis{
		Dimensions: dimensions(source, codes),
		Codes:      codes,
		Colors:     colors,
		Distinct:   distinct,
	}, nil
}

// dimensions prefers the #define header and falls back to the parsed grid
// for any size the header does not declare. FrameCount stays zero unless
// declared.
func dimensions(source string, codes domain.Grid[domain.ColorCode]) domain.Dimensions {
	d := parser.Header(source)
	if d.Width == 0 {
		d.Width = codes.Width()
	}
	if d.Height == 0 {
		d.Height = codes.Rows()
	}
	return d
}

// Convert runs the whole pipeline on source, asking the configured
// Prompter once per distinct colour.
func (c *Converter) Convert(ctx context.Context, source string) (*Result, error) {
	return c.ConvertWith(ctx, source, c.prompter)
}

// ConvertWith is Convert with a per-call Prompter.
func (c *Converter) ConvertWith(ctx context.Context, source string, p glyph.Prompter) (*Result, error) {
	start := time.Now()
	a, err := c.Analyze(ctx, source)
	if err != nil {
		return nil, err
	}
	return c.finish(ctx, a, p, start)
}

// Finish assigns glyphs to an earlier Analysis and renders the map.
func (c *Converter) Finish(ctx context.Context, a *Analysis, p glyph.Prompter) (*Result, error) {
	return c.finish(ctx, a, p, time.Now())
}

func (c *Converter) finish(ctx context.Context, a *Analysis, p glyph.Prompter, start time.Time) (*Result, error) {
	reg := glyph.NewRegistry()
	reg.OnAssign = func(ctx context.Context, e *domain.GlyphEvent) {
		c.logger.Debug("Glyph assigned", "color", e.Color, "glyph", e.Glyph, "defaulted", e.Defaulted)
		if c.hooks.OnGlyphAssigned != nil {
			c.hooks.OnGlyphAssigned(ctx, e)
		}
	}
	if err := reg.ResolveAll(ctx, c.Resolver(p), a.Distinct); err != nil {
		return nil, err
	}

	glyphs, err := reg.Apply(a.Colors)
	if err != nil {
		return nil, err
	}
	lines := render.Lines(glyphs)
	res := &Result{
		Analysis:    *a,
		Glyphs:      glyphs,
		Assignments: reg.Assignments(),
		Text:        strings.Join(lines, "\n"),
	}

	if c.hooks.OnRendered != nil {
		c.hooks.OnRendered(ctx, &domain.RenderEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventRendered},
			Lines:     len(lines),
			Duration:  time.Since(start),
		})
	}
	return res, nil
}

// ColorSummary describes one distinct colour of an export.
type ColorSummary struct {
	Name       domain.ColorName   `json:"name"`
	Count      int                `json:"count"`
	Hex        string             `json:"hex,omitempty"`
	Suggestion *domain.Suggestion `json:"suggestion,omitempty"`
	Nearest    domain.ColorName   `json:"nearest,omitempty"`
}

// Summarize lists the distinct colours of a in first-appearance order with
// their cell counts, suggested glyphs and, for computed colours, the closest
// palette colour.
func (c *Converter) Summarize(a *Analysis) []ColorSummary {
	counts := palette.Count(a.Colors)
	out := make([]ColorSummary, 0, len(a.Distinct))
	for _, name := range a.Distinct {
		s := ColorSummary{Name: name, Count: counts[name]}
		if hex, ok := c.colors.Hex(name); ok {
			s.Hex = hex
		}
		if sug, ok := c.suggestions[name]; ok {
			s.Suggestion = &sug
		}
		if name.IsComputed() {
			if nearest, _, ok := c.colors.Nearest(name); ok {
				s.Nearest = nearest
			}
		}
		out = append(out, s)
	}
	return out
}

func (c *Converter) emitGrid(ctx context.Context, fn func(context.Context, *domain.GridEvent), t domain.EventType, rows, width, cells, distinct int) {
	if fn == nil {
		return
	}
	fn(ctx, &domain.GridEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: t},
		Rows:      rows,
		Width:     width,
		Cells:     cells,
		Distinct:  distinct,
	})
}
