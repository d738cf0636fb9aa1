package glyph_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/vaultmap/pkg/domain"
	"github.com/aretw0/vaultmap/pkg/glyph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scripted answers prompts from a fixed list and records what was asked.
type scripted struct {
	answers []string
	asked   []domain.ColorName
	hints   []*domain.Suggestion
}

func (s *scripted) Ask(ctx context.Context, name domain.ColorName, suggestion *domain.Suggestion) (string, error) {
	s.asked = append(s.asked, name)
	s.hints = append(s.hints, suggestion)
	if len(s.answers) == 0 {
		return "", errors.New("script exhausted")
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	return a, nil
}

func TestResolver_Transparent(t *testing.T) {
	p := &scripted{}
	g, err := glyph.NewResolver(p).Resolve(context.Background(), domain.Transparent)
	require.NoError(t, err)
	assert.Equal(t, domain.TransparentGlyph, g)
	assert.Empty(t, p.asked, "transparent must not prompt")
}

func TestResolver_Suggested(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   domain.Glyph
		def    bool
	}{
		{"Accept Default", "", "x", true},
		{"Override", "#", "#", false},
		{"Multi Character Verbatim", "ab", "ab", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &scripted{answers: []string{tt.answer}}
			a, err := glyph.NewResolver(p).Assign(context.Background(), "Dark Gray")
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.Glyph)
			assert.Equal(t, tt.def, a.Defaulted)
			assert.True(t, a.Prompted)
			require.Len(t, p.hints, 1)
			require.NotNil(t, p.hints[0])
			assert.Equal(t, "Opaque Rock Wall", p.hints[0].Label)
		})
	}
}

func TestResolver_UnknownRepromptsOnEmpty(t *testing.T) {
	p := &scripted{answers: []string{"", "", "q"}}
	g, err := glyph.NewResolver(p).Resolve(context.Background(), "#A1B2C3")
	require.NoError(t, err)
	assert.Equal(t, domain.Glyph("q"), g)
	assert.Len(t, p.asked, 3)
	assert.Nil(t, p.hints[0])
}

func TestResolver_GrayHasNoDefault(t *testing.T) {
	p := &scripted{answers: []string{"", "c"}}
	g, err := glyph.NewResolver(p).Resolve(context.Background(), "Gray")
	require.NoError(t, err)
	assert.Equal(t, domain.Glyph("c"), g)
	assert.Len(t, p.asked, 2)
}

func TestResolver_PromptError(t *testing.T) {
	p := &scripted{}
	_, err := glyph.NewResolver(p).Resolve(context.Background(), "#A1B2C3")
	assert.EqualError(t, err, "script exhausted")
}

func TestResolver_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := glyph.PrompterFunc(func(ctx context.Context, name domain.ColorName, s *domain.Suggestion) (string, error) {
		return "", nil
	})
	_, err := glyph.NewResolver(p).Resolve(ctx, "#A1B2C3")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResolver_NoPrompter(t *testing.T) {
	_, err := glyph.NewResolver(nil).Resolve(context.Background(), "White")
	assert.ErrorIs(t, err, domain.ErrNoGlyph)
}

func TestFixed(t *testing.T) {
	f := glyph.Fixed{"#A1B2C3": "z", "White": "W"}
	r := glyph.NewResolver(f)
	ctx := context.Background()

	g, err := r.Resolve(ctx, "#A1B2C3")
	require.NoError(t, err)
	assert.Equal(t, domain.Glyph("z"), g)

	g, err = r.Resolve(ctx, "White")
	require.NoError(t, err)
	assert.Equal(t, domain.Glyph("W"), g)

	g, err = r.Resolve(ctx, "Black")
	require.NoError(t, err)
	assert.Equal(t, domain.Glyph("."), g)

	_, err = r.Resolve(ctx, "#000001")
	assert.ErrorIs(t, err, domain.ErrNoGlyph)

	missing := f.Missing(r, []domain.ColorName{"Transparent", "#A1B2C3", "Black", "#000001", "Gray"})
	assert.Equal(t, []domain.ColorName{"#000001", "Gray"}, missing)
}
