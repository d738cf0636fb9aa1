package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/aretw0/vaultmap"
	"github.com/aretw0/vaultmap/internal/presentation/tui"
	"github.com/aretw0/vaultmap/pkg/prompt"
	"github.com/aretw0/vaultmap/pkg/render"
)

// Streams are the standard streams of a command. Prompts and the MAP block
// go to Out; banner, preview and logs go to Err.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// ConvertOptions configures an interactive conversion.
type ConvertOptions struct {
	File    string
	Frame   int
	Lenient bool
	Preview bool
	Color   bool
	Debug   bool
	Logger  *slog.Logger
}

func (o ConvertOptions) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return NewLogger(o.Debug, "")
}

// RunConvert asks for the export if needed, asks for every colour's glyph
// and prints the MAP block.
func RunConvert(ctx context.Context, opts ConvertOptions, s Streams) error {
	logger := opts.logger()
	interactive := opts.Color && tui.IsTerminal(s.Out)

	if interactive && tui.IsTerminal(s.Err) {
		tui.PrintBanner(s.Err)
	}

	conv := newConverter(opts, logger)
	var promptOpts []prompt.Option
	if interactive {
		promptOpts = append(promptOpts, prompt.WithSwatch(tui.NewSwatch(conv.Palette())))
	}
	p := prompt.NewTextPrompter(s.In, s.Out, promptOpts...)

	path, source, err := OpenExport(ctx, opts.File, p, s.Out)
	if err != nil {
		return handleExecutionError(s.Out, err)
	}
	logger.Debug("Export loaded", "path", path, "bytes", len(source))

	res, err := conv.ConvertWith(ctx, source, p)
	if err != nil {
		return handleExecutionError(s.Out, err)
	}

	if err := render.Write(s.Out, res.Glyphs); err != nil {
		return err
	}

	if opts.Preview {
		out, err := tui.NewRenderer()(tui.PreviewMarkdown(filepath.Base(path), res.Text))
		if err != nil {
			logger.Warn("Preview failed", "error", err)
			return nil
		}
		fmt.Fprint(s.Err, out)
	}
	return nil
}

func newConverter(opts ConvertOptions, logger *slog.Logger) *vaultmap.Converter {
	convOpts := []vaultmap.Option{
		vaultmap.WithFrame(opts.Frame),
		vaultmap.WithLenientParse(opts.Lenient),
		vaultmap.WithLogger(logger),
	}
	if opts.Debug {
		convOpts = append(convOpts, vaultmap.WithHooks(debugHooks(logger)))
	}
	return vaultmap.New(convOpts...)
}
