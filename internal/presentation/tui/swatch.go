package tui

import (
	"io"
	"os"

	"github.com/aretw0/vaultmap/pkg/domain"
	"github.com/aretw0/vaultmap/pkg/palette"
	"github.com/aretw0/vaultmap/pkg/prompt"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// NewSwatch returns a prompt.SwatchFunc that draws a two-cell block in the
// colour being asked about. Transparent and unknown names draw nothing.
func NewSwatch(colors *palette.Resolver) prompt.SwatchFunc {
	return func(name domain.ColorName) string {
		hex, ok := colors.Hex(name)
		if !ok {
			return ""
		}
		return Swatch(hex) + " "
	}
}

// Swatch renders a two-cell block with background hex.
func Swatch(hex string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
}
