package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/aretw0/vaultmap"
	"github.com/aretw0/vaultmap/internal/presentation/tui"
	"github.com/aretw0/vaultmap/pkg/domain"
	"github.com/aretw0/vaultmap/pkg/glyph"
	"github.com/aretw0/vaultmap/pkg/palette"
)

// PrintPalette lists the colour table next to the suggested glyphs, ordered
// by name. Suggestions for names the colour table never produces are listed
// after it.
func PrintPalette(w io.Writer, color bool) {
	colors := palette.New(nil)
	entries := colors.Entries()

	summaries := make([]vaultmap.ColorSummary, 0, len(entries))
	seen := make(map[domain.ColorName]bool, len(entries))
	for _, e := range entries {
		s := vaultmap.ColorSummary{Name: e.Name}
		if hex, ok := colors.Hex(e.Name); ok {
			s.Hex = hex
		}
		if sug, ok := glyph.DefaultSuggestions[e.Name]; ok {
			s.Suggestion = &sug
		}
		summaries = append(summaries, s)
		seen[e.Name] = true
	}

	var orphans []domain.ColorName
	for name := range glyph.DefaultSuggestions {
		if !seen[name] {
			orphans = append(orphans, name)
		}
	}
	sort.Slice(orphans, func(i, j int) bool { return orphans[i] < orphans[j] })
	for _, name := range orphans {
		sug := glyph.DefaultSuggestions[name]
		summaries = append(summaries, vaultmap.ColorSummary{Name: name, Suggestion: &sug})
	}

	fmt.Fprintln(w, tui.ColorTable(summaries, color && tui.IsTerminal(w)))
}
