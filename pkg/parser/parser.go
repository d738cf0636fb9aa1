package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/aretw0/vaultmap/pkg/domain"
)

// Marker opens the nested array literal holding the first frame.
const Marker = "{\n{\n"

type options struct {
	lenient bool
}

// Option configures parsing.
type Option func(*options)

// WithLenient makes a missing Marker non-fatal: the whole text is parsed as
// the grid body, which normally fails later when the codes are resolved.
func WithLenient() Option {
	return func(o *options) {
		o.lenient = true
	}
}

// Parse returns the first frame of the export.
func Parse(text string, opts ...Option) (domain.Grid[domain.ColorCode], error) {
	return ParseFrame(text, 0, opts...)
}

// ParseFrame returns frame n (zero based) of the export.
func ParseFrame(text string, n int, opts ...Option) (domain.Grid[domain.ColorCode], error) {
	frames, err := ParseFrames(text, opts...)
	if err != nil {
		return nil, err
	}
	if n < 0 || n >= len(frames) {
		return nil, fmt.Errorf("%w: frame %d of %d", domain.ErrFrameOutOfRange, n, len(frames))
	}
	return frames[n], nil
}

// ParseFrames returns every frame of the export in declaration order.
func ParseFrames(text string, opts ...Option) ([]domain.Grid[domain.ColorCode], error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrEmptyInput
	}

	start := strings.Index(text, Marker)
	if start < 0 {
		if !o.lenient {
			return nil, fmt.Errorf("%w: expected %q", domain.ErrMarkerNotFound, Marker)
		}
		return []domain.Grid[domain.ColorCode]{splitBody(text)}, nil
	}

	var frames []domain.Grid[domain.ColorCode]
	rest := text[start+len(Marker):]
	for {
		end := strings.IndexByte(rest, '}')
		if end < 0 {
			frames = append(frames, splitBody(rest))
			break
		}
		frames = append(frames, splitBody(rest[:end]))

		// Another frame follows as ",\n{\n"; anything else closes the outer literal.
		rest = strings.TrimLeftFunc(rest[end+1:], func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
		if !strings.HasPrefix(rest, "{") {
			break
		}
		rest = rest[1:]
	}
	return frames, nil
}

// splitBody turns the text between the braces into rows of codes.
func splitBody(body string) domain.Grid[domain.ColorCode] {
	body = stripSpaces(body)

	var grid domain.Grid[domain.ColorCode]
	for _, line := range strings.Split(body, "\n") {
		if line == "" {
			continue
		}
		// Every row but the last carries a trailing separator.
		line = strings.TrimSuffix(line, ",")
		fields := strings.Split(line, ",")
		row := make([]domain.ColorCode, len(fields))
		for i, f := range fields {
			row[i] = domain.ColorCode(f)
		}
		grid = append(grid, row)
	}
	return grid
}

// stripSpaces removes whitespace except newlines, which separate rows.
func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if r != '\n' && unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

var defineRe = regexp.MustCompile(`(?m)^#define\s+\w*?FRAME_(WIDTH|HEIGHT|COUNT)\s+(\d+)`)

// Header reads the frame geometry declared by the export's #define lines.
// Missing values are left at zero; nothing is validated against the grid.
func Header(text string) domain.Dimensions {
	var d domain.Dimensions
	for _, m := range defineRe.FindAllStringSubmatch(text, -1) {
		v, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		switch m[1] {
		case "WIDTH":
			d.Width = v
		case "HEIGHT":
			d.Height = v
		case "COUNT":
			d.FrameCount = v
		}
	}
	return d
}
