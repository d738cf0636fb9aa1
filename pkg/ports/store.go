package ports

import (
	"context"

	"github.com/aretw0/vaultmap/pkg/domain"
)

// ResultCache stores rendered maps for the stateless surfaces.
// Only conversions whose glyphs were fully determined by the request are
// cached; interactive choices are never stored.
type ResultCache interface {
	// Get returns the map stored under key.
	// Returns domain.ErrCacheMiss if the key is absent or expired.
	Get(ctx context.Context, key string) (*domain.RenderedMap, error)

	// Put stores m under key, replacing any previous value.
	Put(ctx context.Context, key string, m *domain.RenderedMap) error
}
