package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/vaultmap"
	"github.com/aretw0/vaultmap/pkg/adapters/memory"
	"github.com/aretw0/vaultmap/pkg/domain"
	"github.com/aretw0/vaultmap/pkg/observability"
	"github.com/aretw0/vaultmap/pkg/service"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const source = `static const uint32_t vault_data[1][6] = {
{
0xff808080, 0x00000000, 0xff112233, 
0xffffffff, 0xff808080, 0xff112233
}
};
`

func TestService_Convert(t *testing.T) {
	cache := memory.NewStore(0)
	metrics := observability.NewMetrics()
	svc := service.New(service.WithCache(cache), service.WithMetrics(metrics))
	ctx := context.Background()
	req := service.Request{Source: source, Glyphs: map[string]string{"#332211": "~"}}

	resp, err := svc.Convert(ctx, "test", req)
	require.NoError(t, err)
	assert.False(t, resp.Cached)
	assert.Equal(t, "MAP\nx ~\nXx~\nENDMAP", resp.Map)
	assert.Equal(t, domain.Glyph("~"), resp.Assignments["#332211"])

	again, err := svc.Convert(ctx, "test", req)
	require.NoError(t, err)
	assert.True(t, again.Cached)
	assert.Equal(t, resp.Map, again.Map)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.CacheLookup.WithLabelValues("hit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.Conversions.WithLabelValues("test", "ok")))
}

func TestService_MissingGlyphs(t *testing.T) {
	svc := service.New()
	_, err := svc.Convert(context.Background(), "test", service.Request{Source: source})

	var missing *service.MissingGlyphsError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []domain.ColorName{"#332211"}, missing.Colors)
	assert.ErrorIs(t, err, domain.ErrNoGlyph)
	assert.Equal(t, "no glyph for #332211", err.Error())
}

func TestService_OverrideDefault(t *testing.T) {
	svc := service.New()
	resp, err := svc.Convert(context.Background(), "test", service.Request{
		Source: source,
		Glyphs: map[string]string{"#332211": "~", "Dark Gray": "#"},
	})
	require.NoError(t, err)
	assert.Equal(t, "MAP\n# ~\nX#~\nENDMAP", resp.Map)
}

func TestService_Errors(t *testing.T) {
	svc := service.New()
	ctx := context.Background()

	_, err := svc.Convert(ctx, "test", service.Request{})
	assert.ErrorIs(t, err, domain.ErrEmptyInput)

	_, err = svc.Convert(ctx, "test", service.Request{Source: "nothing"})
	assert.ErrorIs(t, err, domain.ErrMarkerNotFound)

	_, err = svc.Colors(ctx, service.Request{Source: "  "})
	assert.ErrorIs(t, err, domain.ErrEmptyInput)
}

func TestService_Colors(t *testing.T) {
	colors, err := service.New().Colors(context.Background(), service.Request{Source: source})
	require.NoError(t, err)
	require.Len(t, colors, 4)
	assert.Equal(t, domain.ColorName("Dark Gray"), colors[0].Name)
	assert.Equal(t, domain.Transparent, colors[1].Name)
	assert.Equal(t, domain.ColorName("#332211"), colors[2].Name)
	assert.Equal(t, 2, colors[2].Count)
}

func TestCacheKey(t *testing.T) {
	a := service.Request{Source: "s", Glyphs: map[string]string{"a": "1", "b": "2"}}
	b := service.Request{Source: "s", Glyphs: map[string]string{"b": "2", "a": "1"}}
	assert.Equal(t, service.CacheKey(a), service.CacheKey(b))

	b.Frame = 1
	assert.NotEqual(t, service.CacheKey(a), service.CacheKey(b))

	c := service.Request{Source: "s", Glyphs: map[string]string{"a": "1"}, Lenient: true}
	assert.NotEqual(t, service.CacheKey(a), service.CacheKey(c))
}

func TestService_DimensionsWithoutHeader(t *testing.T) {
	resp, err := service.New().Convert(context.Background(), "test", service.Request{
		Source: source,
		Glyphs: map[string]string{"#332211": "."},
	})
	require.NoError(t, err)
	assert.Equal(t, "MAP\nx .\nXx.\nENDMAP", resp.Map)
	assert.Equal(t, domain.Dimensions{Width: 3, Height: 2}, resp.Dimensions)
}

func TestService_CacheSeparatesTables(t *testing.T) {
	cache := memory.NewStore(0)
	ctx := context.Background()
	req := service.Request{Source: source, Glyphs: map[string]string{"#332211": "~"}}

	stock := service.New(service.WithCache(cache))
	custom := service.New(service.WithCache(cache), service.WithConverterOptions(
		vaultmap.WithSuggestions(map[domain.ColorName]domain.Suggestion{
			"Dark Gray": {Glyph: "#", Label: "Wall"},
			"White":     {Glyph: ".", Label: "Floor"},
		}),
	))

	first, err := stock.Convert(ctx, "test", req)
	require.NoError(t, err)
	assert.Equal(t, "MAP\nx ~\nXx~\nENDMAP", first.Map)

	second, err := custom.Convert(ctx, "test", req)
	require.NoError(t, err)
	assert.False(t, second.Cached)
	assert.Equal(t, "MAP\n# ~\n.#~\nENDMAP", second.Map)
	assert.Equal(t, 2, cache.Len())

	again, err := stock.Convert(ctx, "test", req)
	require.NoError(t, err)
	assert.True(t, again.Cached)
	assert.Equal(t, first.Map, again.Map)
}

func TestTablesDigest(t *testing.T) {
	assert.Equal(t, service.TablesDigest(vaultmap.New()), service.TablesDigest(vaultmap.New()))
	assert.NotEqual(t,
		service.TablesDigest(vaultmap.New()),
		service.TablesDigest(vaultmap.New(vaultmap.WithColors(map[domain.ColorCode]domain.ColorName{"0xff808080": "Wall"}))))
}
