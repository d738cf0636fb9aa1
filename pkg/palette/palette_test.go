package palette_test

import (
	"regexp"
	"testing"

	"github.com/aretw0/vaultmap/pkg/domain"
	"github.com/aretw0/vaultmap/pkg/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveColor(t *testing.T) {
	tests := []struct {
		name string
		code domain.ColorCode
		want domain.ColorName
	}{
		{"Palette Hit", "0xff808080", "Dark Gray"},
		{"White", "0xffffffff", "White"},
		{"Fallback Reorders Bytes", "0xff112233", "#332211"},
		{"Fallback Uppercases", "0xffabcdef", "#EFCDAB"},
		{"Table Is Case Sensitive", "0xFF808080", "#808080"},
		{"Transparent", "0x00000000", domain.Transparent},
		{"Transparent Ignores Color", "0x00ffffff", domain.Transparent},
		{"Partial Alpha Is Opaque", "0x01808080", "#808080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := palette.ResolveColor(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveColor_Malformed(t *testing.T) {
	for _, code := range []domain.ColorCode{"", "0xff", "ffff808080", "0xff80808g", "0xffco0080", "0xff8080800"} {
		_, err := palette.ResolveColor(code)
		assert.ErrorIs(t, err, domain.ErrMalformedCode, "code %q", code)
	}
}

func TestResolveColor_Total(t *testing.T) {
	literal := regexp.MustCompile(`^#[0-9A-F]{6}$`)
	known := map[domain.ColorName]bool{domain.Transparent: true}
	for _, name := range palette.DefaultColors {
		known[name] = true
	}

	digits := "0123456789abcdefABCDEF"
	for i := 0; i < len(digits); i++ {
		for _, alpha := range []string{"00", "ff", "7f"} {
			code := domain.ColorCode("0x" + alpha + string(digits[i]) + "0c0d" + string(digits[len(digits)-1-i]))
			name, err := palette.ResolveColor(code)
			require.NoError(t, err)
			assert.True(t, known[name] || literal.MatchString(string(name)), "unexpected name %q for %q", name, code)
		}
	}
}

func TestResolver_CustomTable(t *testing.T) {
	r := palette.New(map[domain.ColorCode]domain.ColorName{"0xff0000ff": "Lava Red"})
	name, err := r.Resolve("0xff0000ff")
	require.NoError(t, err)
	assert.Equal(t, domain.ColorName("Lava Red"), name)

	name, err = r.Resolve("0xff808080")
	require.NoError(t, err)
	assert.Equal(t, domain.ColorName("#808080"), name)
}

func TestResolveGrid(t *testing.T) {
	codes := domain.Grid[domain.ColorCode]{
		{"0xff808080", "0x00000000"},
		{"0xffffffff", "0xff808080"},
	}
	names, err := palette.New(nil).ResolveGrid(codes)
	require.NoError(t, err)
	assert.Equal(t, domain.Grid[domain.ColorName]{
		{"Dark Gray", "Transparent"},
		{"White", "Dark Gray"},
	}, names)

	_, err = palette.New(nil).ResolveGrid(domain.Grid[domain.ColorCode]{{"nope"}})
	assert.ErrorIs(t, err, domain.ErrMalformedCode)
}

func TestDistinctAndCount(t *testing.T) {
	names := domain.Grid[domain.ColorName]{
		{"White", "Transparent", "White"},
		{"#332211", "White", "Transparent"},
	}
	assert.Equal(t, []domain.ColorName{"White", "Transparent", "#332211"}, palette.Distinct(names))
	assert.Equal(t, map[domain.ColorName]int{"White": 3, "Transparent": 2, "#332211": 1}, palette.Count(names))
}

func TestResolver_HexAndNearest(t *testing.T) {
	r := palette.New(nil)

	hex, ok := r.Hex("Dark Gray")
	require.True(t, ok)
	assert.Equal(t, "#808080", hex)

	hex, ok = r.Hex("Dark Red")
	require.True(t, ok)
	assert.Equal(t, "#800000", hex)

	_, ok = r.Hex("Purple")
	assert.False(t, ok, "malformed table entry has no colour")

	name, dist, ok := r.Nearest("#818181")
	require.True(t, ok)
	assert.Equal(t, domain.ColorName("Dark Gray"), name)
	assert.Less(t, dist, 0.05)

	name, dist, ok = r.Nearest("White")
	require.True(t, ok)
	assert.Equal(t, domain.ColorName("White"), name)
	assert.Zero(t, dist)
}

func TestResolver_Entries(t *testing.T) {
	entries := palette.New(nil).Entries()
	assert.Len(t, entries, len(palette.DefaultColors))
	assert.Equal(t, domain.ColorName("Black"), entries[0].Name)
}
