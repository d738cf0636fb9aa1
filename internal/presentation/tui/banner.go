package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the vaultmap banner to w.
func PrintBanner(w io.Writer) {
	out := termenv.NewOutput(w)
	lines := []struct {
		text, color string
	}{
		{" __   __          _ _   __  __", "#a8a29e"},
		{" \\ \\ / /_ _ _  _| | |_|  \\/  |__ _ _ __", "#d6d3d1"},
		{"  \\ V / _` | || | |  _| |\\/| / _` | '_ \\", "#fbbf24"},
		{"   \\_/\\__,_|\\_,_|_|\\__|_|  |_\\__,_| .__/", "#f59e0b"},
		{"                                   |_|", "#b45309"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w)
}
