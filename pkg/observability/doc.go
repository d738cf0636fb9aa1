// Package observability exposes conversion metrics in Prometheus format.
//
// Metrics are recorded through domain.Hooks, so any surface that drives a
// vaultmap.Converter can be instrumented without the pipeline knowing.
package observability
