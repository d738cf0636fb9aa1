package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/aretw0/vaultmap/internal/logging"
	"github.com/aretw0/vaultmap/pkg/domain"
)

// SignalContext wraps a context and captures the signal that cancelled it.
type SignalContext struct {
	context.Context
	Cancel func()
	start  sync.Once
	stop   sync.Once
	sigCh  chan os.Signal
	sigVal os.Signal
	mu     sync.Mutex
}

// NewSignalContext creates a context that is cancelled on SIGINT or SIGTERM.
// It acts as a drop-in replacement for signal.NotifyContext but allows retrieving the signal.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{
		Context: ctx,
		Cancel:  cancel,
		sigCh:   make(chan os.Signal, 1),
	}

	sc.start.Do(func() {
		signal.Notify(sc.sigCh, os.Interrupt, syscall.SIGTERM)
		go func() {
			select {
			case sig := <-sc.sigCh:
				sc.mu.Lock()
				sc.sigVal = sig
				sc.mu.Unlock()
				sc.Cancel()
			case <-sc.Context.Done():
			}
			sc.stop.Do(func() {
				signal.Stop(sc.sigCh)
			})
		}()
	})

	return sc
}

// Signal returns the signal that caused the context to be cancelled, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sigVal
}

// NewLogger configures the application logger. Without debug only the
// configured level reaches Stderr; with debug everything does.
func NewLogger(debug bool, level string) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	if level == "" {
		return logging.NewNop()
	}
	return logging.New(logging.ParseLevel(level))
}

// debugHooks logs every pipeline stage.
func debugHooks(logger *slog.Logger) domain.Hooks {
	return domain.Hooks{
		OnParsed: func(ctx context.Context, e *domain.GridEvent) {
			logger.Debug("Parsed", "rows", e.Rows, "width", e.Width, "cells", e.Cells)
		},
		OnColorResolved: func(ctx context.Context, e *domain.GridEvent) {
			logger.Debug("Colors Resolved", "distinct", e.Distinct)
		},
		OnGlyphAssigned: func(ctx context.Context, e *domain.GlyphEvent) {
			logger.Debug("Glyph Assigned", "color", e.Color, "glyph", e.Glyph, "defaulted", e.Defaulted)
		},
		OnRendered: func(ctx context.Context, e *domain.RenderEvent) {
			logger.Debug("Rendered", "lines", e.Lines, "duration", e.Duration)
		},
	}
}

func isInterrupted(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, io.EOF)
}

// handleExecutionError turns interruptions into a clean exit.
func handleExecutionError(w io.Writer, err error) error {
	if err == nil {
		return nil
	}
	if isInterrupted(err) {
		fmt.Fprintln(w)
		return nil
	}
	return err
}
