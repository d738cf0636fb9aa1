package tui

import (
	"fmt"
	"strconv"

	"github.com/aretw0/vaultmap"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// ColorTable renders the inspect listing. Swatches are drawn only when
// swatches is set.
func ColorTable(colors []vaultmap.ColorSummary, swatches bool) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("", "COLOUR", "CELLS", "DEFAULT", "NEAREST").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, c := range colors {
		sw := ""
		if swatches && c.Hex != "" {
			sw = Swatch(c.Hex)
		}
		def := "-"
		if c.Suggestion != nil {
			def = fmt.Sprintf("%s %s", c.Suggestion.Glyph, c.Suggestion.Label)
		}
		t.Row(sw, string(c.Name), strconv.Itoa(c.Count), def, string(c.Nearest))
	}
	return t.Render()
}
