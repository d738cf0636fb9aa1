package tui

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)

	return func(markdown string) (string, error) {
		if err != nil {
			return "", fmt.Errorf("markdown renderer: %w", err)
		}
		return r.Render(markdown)
	}
}

// PreviewMarkdown wraps a MAP block in a titled markdown code fence.
func PreviewMarkdown(title, mapText string) string {
	return fmt.Sprintf("## %s\n\n```\n%s\n```\n", title, mapText)
}
