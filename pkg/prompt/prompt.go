// Package prompt implements line based prompting on a terminal or any
// reader/writer pair.
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/aretw0/vaultmap/pkg/domain"
)

// SwatchFunc returns text printed in front of a glyph prompt, typically a
// coloured block showing the colour being asked about. An empty string
// prints nothing.
type SwatchFunc func(name domain.ColorName) string

// TextPrompter asks questions on a text stream. It implements glyph.Prompter.
type TextPrompter struct {
	Reader *bufio.Reader
	Writer io.Writer
	Swatch SwatchFunc

	lines     chan lineResult
	startOnce sync.Once
}

type lineResult struct {
	text string
	err  error
}

// Option defines configuration for TextPrompter.
type Option func(*TextPrompter)

// WithSwatch prints a swatch before each glyph prompt.
func WithSwatch(fn SwatchFunc) Option {
	return func(p *TextPrompter) {
		p.Swatch = fn
	}
}

// NewTextPrompter creates a prompter for r and w, defaulting to the standard streams.
func NewTextPrompter(r io.Reader, w io.Writer, opts ...Option) *TextPrompter {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	p := &TextPrompter{
		Reader: bufio.NewReader(r),
		Writer: w,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Format returns the prompt shown for a colour: "<name> (<glyph> <label>): "
// when a suggestion exists, "<name>: " otherwise.
func Format(name domain.ColorName, s *domain.Suggestion) string {
	if s == nil {
		return fmt.Sprintf("%s: ", name)
	}
	return fmt.Sprintf("%s (%s %s): ", name, s.Glyph, s.Label)
}

// Ask prints the glyph prompt for name and returns the answer.
func (p *TextPrompter) Ask(ctx context.Context, name domain.ColorName, s *domain.Suggestion) (string, error) {
	if p.Swatch != nil {
		if sw := p.Swatch(name); sw != "" {
			fmt.Fprint(p.Writer, sw)
		}
	}
	return p.Line(ctx, Format(name, s))
}

// Line prints question and reads one line. The line ending is dropped and
// nothing else is trimmed. Answers that fail sanitising, or that are left
// empty by it, are asked again.
func (p *TextPrompter) Line(ctx context.Context, question string) (string, error) {
	p.initPump()

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
			fmt.Fprint(p.Writer, question)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case res, ok := <-p.lines:
			if !ok {
				return "", io.EOF
			}
			if res.err != nil {
				return "", res.err
			}
			raw := strings.TrimRight(res.text, "\r\n")
			clean, err := SanitizeInput(raw)
			if err == nil && clean == "" && raw != "" {
				err = ErrControlOnly
			}
			if err != nil {
				fmt.Fprintf(p.Writer, "Error: %v. Please try again.\n", err)
				continue
			}
			return clean, nil
		}
	}
}

func (p *TextPrompter) initPump() {
	p.startOnce.Do(func() {
		p.lines = make(chan lineResult)
		go p.pump()
	})
}

// pump reads lines in the background so a blocked read never outlives a
// cancelled context from the caller's point of view.
func (p *TextPrompter) pump() {
	defer close(p.lines)
	for {
		text, err := p.Reader.ReadString('\n')
		if text != "" {
			p.lines <- lineResult{text: text}
		}
		if err != nil {
			if err != io.EOF {
				p.lines <- lineResult{err: err}
			}
			return
		}
	}
}
