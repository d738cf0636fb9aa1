package palette

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/vaultmap/pkg/domain"
	"github.com/lucasb-eyer/go-colorful"
)

// codeLen is len("0xAABBGGRR").
const codeLen = 10

// Resolver turns color codes into names using a fixed table.
type Resolver struct {
	colors map[domain.ColorCode]domain.ColorName
	named  []namedColor
}

type namedColor struct {
	name  domain.ColorName
	hex   string
	color colorful.Color
}

// New creates a Resolver over the given table. A nil table uses DefaultColors.
func New(colors map[domain.ColorCode]domain.ColorName) *Resolver {
	if colors == nil {
		colors = DefaultColors
	}
	r := &Resolver{colors: colors}

	for code, name := range colors {
		if Validate(code) != nil {
			continue
		}
		hex := reorder(code)
		c, err := colorful.Hex(hex)
		if err != nil {
			continue
		}
		r.named = append(r.named, namedColor{name: name, hex: hex, color: c})
	}
	// Map iteration order is random; keep lookups stable.
	sort.Slice(r.named, func(i, j int) bool {
		return r.named[i].name < r.named[j].name
	})
	return r
}

var defaultResolver = New(nil)

// ResolveColor resolves code against DefaultColors.
func ResolveColor(code domain.ColorCode) (domain.ColorName, error) {
	return defaultResolver.Resolve(code)
}

// Validate checks that code has the 0xAABBGGRR shape.
func Validate(code domain.ColorCode) error {
	s := string(code)
	if len(s) != codeLen || (s[:2] != "0x" && s[:2] != "0X") {
		return fmt.Errorf("%w: %q", domain.ErrMalformedCode, s)
	}
	for i := 2; i < codeLen; i++ {
		if !isHex(s[i]) {
			return fmt.Errorf("%w: %q", domain.ErrMalformedCode, s)
		}
	}
	return nil
}

// Resolve returns the name of code.
// A zero alpha byte always yields domain.Transparent. Codes missing from the
// table become a #RRGGBB literal in upper case.
func (r *Resolver) Resolve(code domain.ColorCode) (domain.ColorName, error) {
	if err := Validate(code); err != nil {
		return "", err
	}
	if code[2:4] == "00" {
		return domain.Transparent, nil
	}
	if name, ok := r.colors[code]; ok {
		return name, nil
	}
	return domain.ColorName(reorder(code)), nil
}

// ResolveGrid resolves every cell of grid into a new grid of names.
func (r *Resolver) ResolveGrid(grid domain.Grid[domain.ColorCode]) (domain.Grid[domain.ColorName], error) {
	return domain.MapGrid(grid, r.Resolve)
}

// Hex returns the #RRGGBB value behind name, if it is known.
func (r *Resolver) Hex(name domain.ColorName) (string, bool) {
	if name.IsComputed() {
		return string(name), true
	}
	for _, n := range r.named {
		if n.name == name {
			return n.hex, true
		}
	}
	return "", false
}

// Nearest returns the palette colour closest to a #RRGGBB literal, measured
// in Lab space, and the distance. Palette names are returned unchanged with
// a distance of zero.
func (r *Resolver) Nearest(name domain.ColorName) (domain.ColorName, float64, bool) {
	if !name.IsComputed() {
		_, ok := r.Hex(name)
		return name, 0, ok
	}
	c, err := colorful.Hex(string(name))
	if err != nil || len(r.named) == 0 {
		return "", 0, false
	}
	best, dist := r.named[0], c.DistanceLab(r.named[0].color)
	for _, n := range r.named[1:] {
		if d := c.DistanceLab(n.color); d < dist {
			best, dist = n, d
		}
	}
	return best.name, dist, true
}

// Entry is one row of the colour table.
type Entry struct {
	Code domain.ColorCode `json:"code"`
	Name domain.ColorName `json:"name"`
}

// Entries returns the table sorted by name.
func (r *Resolver) Entries() []Entry {
	out := make([]Entry, 0, len(r.colors))
	for code, name := range r.colors {
		out = append(out, Entry{Code: code, Name: name})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name == out[j].Name {
			return out[i].Code < out[j].Code
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Distinct lists the names in grid in row-major order of first appearance.
func Distinct(grid domain.Grid[domain.ColorName]) []domain.ColorName {
	seen := make(map[domain.ColorName]struct{})
	var out []domain.ColorName
	for _, row := range grid {
		for _, name := range row {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			out = append(out, name)
		}
	}
	return out
}

// Count tallies the cells of each name.
func Count(grid domain.Grid[domain.ColorName]) map[domain.ColorName]int {
	out := make(map[domain.ColorName]int)
	for _, row := range grid {
		for _, name := range row {
			out[name]++
		}
	}
	return out
}

// reorder turns a validated 0xAABBGGRR code into #RRGGBB.
func reorder(code domain.ColorCode) string {
	s := strings.ToUpper(string(code))
	return "#" + s[8:10] + s[6:8] + s[4:6]
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
