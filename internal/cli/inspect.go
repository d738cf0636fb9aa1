package cli

import (
	"context"
	"fmt"

	"github.com/aretw0/vaultmap/internal/presentation/tui"
	"github.com/aretw0/vaultmap/pkg/prompt"
)

// RunInspect prints the distinct colours of an export without asking for
// glyphs.
func RunInspect(ctx context.Context, opts ConvertOptions, s Streams) error {
	logger := opts.logger()
	p := prompt.NewTextPrompter(s.In, s.Out)

	path, source, err := OpenExport(ctx, opts.File, p, s.Out)
	if err != nil {
		return handleExecutionError(s.Out, err)
	}

	conv := newConverter(opts, logger)
	a, err := conv.Analyze(ctx, source)
	if err != nil {
		return err
	}

	d := a.Dimensions
	fmt.Fprintf(s.Out, "%s: %d x %d, %d colours", path, a.Colors.Width(), a.Colors.Rows(), len(a.Distinct))
	if d.FrameCount > 0 {
		fmt.Fprintf(s.Out, " (header %dx%d, %d frames)", d.Width, d.Height, d.FrameCount)
	}
	fmt.Fprintln(s.Out)
	fmt.Fprintln(s.Out, tui.ColorTable(conv.Summarize(a), opts.Color && tui.IsTerminal(s.Out)))
	return nil
}
