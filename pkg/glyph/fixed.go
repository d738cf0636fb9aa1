package glyph

import (
	"context"
	"fmt"

	"github.com/aretw0/vaultmap/pkg/domain"
)

// Fixed answers prompts from a table, for surfaces with nobody to ask.
// Colours missing from the table take their default; a colour with neither
// fails with domain.ErrNoGlyph.
type Fixed map[domain.ColorName]domain.Glyph

func (f Fixed) Ask(ctx context.Context, name domain.ColorName, suggestion *domain.Suggestion) (string, error) {
	if g, ok := f[name]; ok && g != "" {
		return string(g), nil
	}
	if suggestion != nil {
		return "", nil
	}
	return "", fmt.Errorf("%w: %s", domain.ErrNoGlyph, name)
}

// Missing lists the names that Fixed cannot answer under r.
func (f Fixed) Missing(r *Resolver, names []domain.ColorName) []domain.ColorName {
	var out []domain.ColorName
	for _, name := range names {
		if name == domain.Transparent {
			continue
		}
		if g, ok := f[name]; ok && g != "" {
			continue
		}
		if _, ok := r.Suggestion(name); ok {
			continue
		}
		out = append(out, name)
	}
	return out
}
