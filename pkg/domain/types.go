package domain

// ColorCode is a packed 32-bit colour as written in the export, e.g. "0xff808080".
// Byte order is alpha, blue, green, red.
type ColorCode string

// ColorName is the grouping key a ColorCode resolves to.
type ColorName string

// Glyph is the text drawn for a colour in the map. Usually a single character.
type Glyph string

const (
	// Transparent is the name every zero-alpha code resolves to.
	Transparent ColorName = "Transparent"

	// TransparentGlyph is reserved for Transparent and trimmed from row ends.
	TransparentGlyph Glyph = " "
)

// IsComputed reports whether the name is a #RRGGBB literal rather than a palette entry.
func (n ColorName) IsComputed() bool {
	return len(n) == 7 && n[0] == '#'
}

// Suggestion is the default glyph offered for a known colour.
type Suggestion struct {
	Glyph Glyph  `json:"glyph" yaml:"glyph" mapstructure:"glyph"`
	Label string `json:"label" yaml:"label" mapstructure:"label"`
}

// Dimensions carries the frame geometry of an export. Width and Height come
// from the header when declared and from the parsed grid otherwise;
// FrameCount is zero unless the header declares it.
type Dimensions struct {
	Width      int `json:"width"`
	Height     int `json:"height"`
	FrameCount int `json:"frame_count"`
}

// RenderedMap is a finished conversion as kept by a result cache.
type RenderedMap struct {
	Map         string              `json:"map"`
	Colors      []ColorName         `json:"colors"`
	Assignments map[ColorName]Glyph `json:"assignments"`
	Dimensions  Dimensions          `json:"dimensions"`
}
