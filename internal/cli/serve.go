package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/vaultmap/internal/config"
	"github.com/aretw0/vaultmap/pkg/adapters/memory"
	"github.com/aretw0/vaultmap/pkg/adapters/redis"
	"github.com/aretw0/vaultmap/pkg/observability"
	"github.com/aretw0/vaultmap/pkg/ports"
	"github.com/aretw0/vaultmap/pkg/service"

	httpAdapter "github.com/aretw0/vaultmap/pkg/adapters/http"
	mcpAdapter "github.com/aretw0/vaultmap/pkg/adapters/mcp"
)

// NewCache builds the result cache named by cfg.Cache.Backend. The returned
// cleanup must be called once the cache is no longer used.
func NewCache(ctx context.Context, cfg *config.Config) (ports.ResultCache, func(), error) {
	switch cfg.Cache.Backend {
	case "", "none":
		return nil, func() {}, nil
	case "memory":
		return memory.NewStore(cfg.Cache.TTL), func() {}, nil
	case "redis":
		store := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, redis.WithTTL(cfg.Cache.TTL))
		if err := store.Ping(ctx); err != nil {
			_ = store.Close()
			return nil, nil, fmt.Errorf("redis unavailable at %s: %w", cfg.Redis.Addr, err)
		}
		return store, func() { _ = store.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown cache backend %q (supported: none, memory, redis)", cfg.Cache.Backend)
	}
}

// NewService wires the cache, metrics and parse defaults from cfg.
func NewService(ctx context.Context, cfg *config.Config, metrics *observability.Metrics, logger *slog.Logger) (*service.Service, func(), error) {
	cache, cleanup, err := NewCache(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	opts := []service.Option{
		service.WithMetrics(metrics),
		service.WithLogger(logger),
	}
	if cache != nil {
		opts = append(opts, service.WithCache(cache))
	}
	return service.New(opts...), cleanup, nil
}

// RunServe starts the HTTP API on addr and blocks until ctx is cancelled.
func RunServe(ctx context.Context, cfg *config.Config, addr string, logger *slog.Logger) error {
	metrics := observability.NewMetrics()
	svc, cleanup, err := NewService(ctx, cfg, metrics, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	handler, err := httpAdapter.NewHandler(svc, httpAdapter.WithMetrics(metrics), httpAdapter.WithLogger(logger))
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("Starting vaultmap server", "address", srv.Addr, "cache", cfg.Cache.Backend)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Graceful shutdown did not complete", "error", err)
			return srv.Close()
		}
		logger.Info("Server stopped gracefully")
		return nil
	}
}

// RunMCP serves the MCP tools over transport ("stdio" or "sse").
func RunMCP(ctx context.Context, cfg *config.Config, transport string, port int, logger *slog.Logger) error {
	svc, cleanup, err := NewService(ctx, cfg, observability.NewMetrics(), logger)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := mcpAdapter.NewServer(svc)
	switch transport {
	case "stdio":
		logger.Info("Starting vaultmap MCP server (stdio)")
		return srv.ServeStdio()
	case "sse":
		logger.Info("Starting vaultmap MCP server (SSE)", "port", port)
		return srv.ServeSSE(ctx, port)
	default:
		return fmt.Errorf("unknown transport: %s. Supported: stdio, sse", transport)
	}
}
