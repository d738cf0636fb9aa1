package glyph

import (
	"context"
	"fmt"
	"time"

	"github.com/aretw0/vaultmap/pkg/domain"
)

// Registry records the glyph chosen for each colour during one conversion.
// Once a colour is assigned it keeps its glyph; later lookups never prompt.
// A Registry is not safe for concurrent use.
type Registry struct {
	glyphs map[domain.ColorName]domain.Glyph
	order  []domain.ColorName

	// OnAssign, if set, is called for every new assignment.
	OnAssign func(context.Context, *domain.GlyphEvent)
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		glyphs: make(map[domain.ColorName]domain.Glyph),
	}
}

// Lookup returns the glyph already assigned to name.
func (g *Registry) Lookup(name domain.ColorName) (domain.Glyph, bool) {
	glyph, ok := g.glyphs[name]
	return glyph, ok
}

// Set assigns glyph to name unless name already has one. It reports whether
// the assignment was stored.
func (g *Registry) Set(name domain.ColorName, glyph domain.Glyph) bool {
	if _, ok := g.glyphs[name]; ok {
		return false
	}
	g.glyphs[name] = glyph
	g.order = append(g.order, name)
	return true
}

// Resolve returns the glyph for name, asking r only the first time.
func (g *Registry) Resolve(ctx context.Context, r *Resolver, name domain.ColorName) (domain.Glyph, error) {
	if glyph, ok := g.glyphs[name]; ok {
		return glyph, nil
	}
	a, err := r.Assign(ctx, name)
	if err != nil {
		return "", fmt.Errorf("resolving glyph for %s: %w", name, err)
	}
	g.Set(name, a.Glyph)
	if g.OnAssign != nil {
		g.OnAssign(ctx, &domain.GlyphEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventGlyphAssigned},
			Color:     a.Color,
			Glyph:     a.Glyph,
			Defaulted: a.Defaulted,
			Prompted:  a.Prompted,
		})
	}
	return a.Glyph, nil
}

// ResolveAll resolves names in order.
func (g *Registry) ResolveAll(ctx context.Context, r *Resolver, names []domain.ColorName) error {
	for _, name := range names {
		if _, err := g.Resolve(ctx, r, name); err != nil {
			return err
		}
	}
	return nil
}

// Apply maps a grid of names onto the assigned glyphs. Every name must
// already be assigned.
func (g *Registry) Apply(grid domain.Grid[domain.ColorName]) (domain.Grid[domain.Glyph], error) {
	return domain.MapGrid(grid, func(name domain.ColorName) (domain.Glyph, error) {
		glyph, ok := g.glyphs[name]
		if !ok {
			return "", fmt.Errorf("%w: %s", domain.ErrNoGlyph, name)
		}
		return glyph, nil
	})
}

// Len returns the number of assigned colours.
func (g *Registry) Len() int {
	return len(g.glyphs)
}

// Names returns the assigned colours in assignment order.
func (g *Registry) Names() []domain.ColorName {
	return append([]domain.ColorName(nil), g.order...)
}

// Assignments returns a copy of the colour to glyph table.
func (g *Registry) Assignments() map[domain.ColorName]domain.Glyph {
	out := make(map[domain.ColorName]domain.Glyph, len(g.glyphs))
	for k, v := range g.glyphs {
		out[k] = v
	}
	return out
}
