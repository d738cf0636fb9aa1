package observability

import (
	"context"
	"net/http"

	"github.com/aretw0/vaultmap/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors of one process.
type Metrics struct {
	registry *prometheus.Registry

	Conversions *prometheus.CounterVec
	Cells       prometheus.Counter
	Colors      prometheus.Histogram
	Glyphs      *prometheus.CounterVec
	CacheLookup *prometheus.CounterVec
	Duration    prometheus.Histogram
}

// NewMetrics creates and registers the collectors on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vaultmap_conversions_total",
			Help: "Conversions by surface and outcome.",
		}, []string{"surface", "outcome"}),
		Cells: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vaultmap_cells_total",
			Help: "Pixels resolved to colour names.",
		}),
		Colors: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "vaultmap_distinct_colors",
			Help:    "Distinct colours per converted export.",
			Buckets: []float64{1, 2, 4, 8, 16, 32, 64},
		}),
		Glyphs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vaultmap_glyph_assignments_total",
			Help: "Glyph assignments by how they were chosen.",
		}, []string{"source"}),
		CacheLookup: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vaultmap_cache_lookups_total",
			Help: "Result cache lookups by outcome.",
		}, []string{"outcome"}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "vaultmap_conversion_duration_seconds",
			Help:    "Time from parse to rendered map.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	m.registry.MustRegister(m.Conversions, m.Cells, m.Colors, m.Glyphs, m.CacheLookup, m.Duration)
	return m
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the collectors in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Hooks returns pipeline hooks that feed the collectors.
func (m *Metrics) Hooks() domain.Hooks {
	return domain.Hooks{
		OnColorResolved: func(ctx context.Context, e *domain.GridEvent) {
			m.Cells.Add(float64(e.Cells))
			m.Colors.Observe(float64(e.Distinct))
		},
		OnGlyphAssigned: func(ctx context.Context, e *domain.GlyphEvent) {
			m.Glyphs.WithLabelValues(glyphSource(e)).Inc()
		},
		OnRendered: func(ctx context.Context, e *domain.RenderEvent) {
			m.Duration.Observe(e.Duration.Seconds())
		},
	}
}

// Conversion counts one finished conversion.
func (m *Metrics) Conversion(surface string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.Conversions.WithLabelValues(surface, outcome).Inc()
}

// Cache counts one cache lookup.
func (m *Metrics) Cache(hit bool) {
	if hit {
		m.CacheLookup.WithLabelValues("hit").Inc()
		return
	}
	m.CacheLookup.WithLabelValues("miss").Inc()
}

func glyphSource(e *domain.GlyphEvent) string {
	switch {
	case !e.Prompted:
		return "transparent"
	case e.Defaulted:
		return "default"
	default:
		return "answer"
	}
}
