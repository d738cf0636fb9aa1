package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/vaultmap/pkg/domain"
	"github.com/aretw0/vaultmap/pkg/ports"
)

// RunResultCacheContract is a reusable test suite that verifies an adapter complies with ports.ResultCache.
func RunResultCacheContract(t *testing.T, cache ports.ResultCache) {
	t.Helper()
	ctx := context.Background()

	t.Run("Get_Miss", func(t *testing.T) {
		_, err := cache.Get(ctx, "missing")
		if !errors.Is(err, domain.ErrCacheMiss) {
			t.Fatalf("expected ErrCacheMiss, got %v", err)
		}
	})

	t.Run("Put_Get", func(t *testing.T) {
		in := &domain.RenderedMap{
			Map:         "MAP\nx\nXx\nENDMAP",
			Colors:      []domain.ColorName{"Dark Gray", "Transparent", "White"},
			Assignments: map[domain.ColorName]domain.Glyph{"Dark Gray": "x", "Transparent": " ", "White": "X"},
			Dimensions:  domain.Dimensions{Width: 2, Height: 2, FrameCount: 1},
		}
		if err := cache.Put(ctx, "k1", in); err != nil {
			t.Fatalf("put failed: %v", err)
		}
		out, err := cache.Get(ctx, "k1")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if out.Map != in.Map {
			t.Errorf("map mismatch: got %q, want %q", out.Map, in.Map)
		}
		if len(out.Colors) != 3 || out.Assignments["White"] != "X" {
			t.Errorf("payload mismatch: %+v", out)
		}
		if out.Dimensions != in.Dimensions {
			t.Errorf("dimensions mismatch: %+v", out.Dimensions)
		}

		// Mutating the returned value must not affect the stored one.
		out.Assignments["White"] = "?"
		again, err := cache.Get(ctx, "k1")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if again.Assignments["White"] != "X" {
			t.Errorf("stored value was mutated through a returned copy")
		}
	})

	t.Run("Put_Overwrites", func(t *testing.T) {
		if err := cache.Put(ctx, "k2", &domain.RenderedMap{Map: "first"}); err != nil {
			t.Fatal(err)
		}
		if err := cache.Put(ctx, "k2", &domain.RenderedMap{Map: "second"}); err != nil {
			t.Fatal(err)
		}
		out, err := cache.Get(ctx, "k2")
		if err != nil {
			t.Fatal(err)
		}
		if out.Map != "second" {
			t.Errorf("expected overwrite, got %q", out.Map)
		}
	})
}
