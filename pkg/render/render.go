// Package render writes a glyph grid as a Dungeon Crawl MAP block.
package render

import (
	"io"
	"strings"

	"github.com/aretw0/vaultmap/pkg/domain"
)

const (
	Header  = "MAP"
	Trailer = "ENDMAP"
)

// Lines returns the MAP block line by line. Trailing whitespace is cut from
// each row, so transparent cells at the end of a row disappear while leading
// and interior ones stay.
func Lines(grid domain.Grid[domain.Glyph]) []string {
	lines := make([]string, 0, len(grid)+2)
	lines = append(lines, Header)
	for _, row := range grid {
		var b strings.Builder
		for _, g := range row {
			b.WriteString(string(g))
		}
		lines = append(lines, strings.TrimRightFunc(b.String(), isTrimmed))
	}
	return append(lines, Trailer)
}

// Render returns the MAP block joined by newlines, without a final newline.
func Render(grid domain.Grid[domain.Glyph]) string {
	return strings.Join(Lines(grid), "\n")
}

// Write writes the MAP block followed by a newline.
func Write(w io.Writer, grid domain.Grid[domain.Glyph]) error {
	_, err := io.WriteString(w, Render(grid)+"\n")
	return err
}

func isTrimmed(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f'
}
