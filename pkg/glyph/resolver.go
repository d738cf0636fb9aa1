package glyph

import (
	"context"
	"fmt"

	"github.com/aretw0/vaultmap/pkg/domain"
)

// Prompter asks for the glyph of one colour and returns the raw answer.
// suggestion is nil when the colour has no default.
type Prompter interface {
	Ask(ctx context.Context, name domain.ColorName, suggestion *domain.Suggestion) (string, error)
}

// PrompterFunc adapts a function to Prompter.
type PrompterFunc func(ctx context.Context, name domain.ColorName, suggestion *domain.Suggestion) (string, error)

func (f PrompterFunc) Ask(ctx context.Context, name domain.ColorName, suggestion *domain.Suggestion) (string, error) {
	return f(ctx, name, suggestion)
}

// Assignment is the outcome of resolving one colour.
type Assignment struct {
	Color     domain.ColorName `json:"color"`
	Glyph     domain.Glyph     `json:"glyph"`
	Defaulted bool             `json:"defaulted"`
	Prompted  bool             `json:"prompted"`
}

// Resolver maps a colour name to a glyph. It holds no per-colour state;
// memoization belongs to Registry.
type Resolver struct {
	Suggestions map[domain.ColorName]domain.Suggestion
	Prompter    Prompter
}

// NewResolver creates a Resolver over DefaultSuggestions.
func NewResolver(p Prompter) *Resolver {
	return &Resolver{
		Suggestions: DefaultSuggestions,
		Prompter:    p,
	}
}

// Suggestion returns the default for name, if any.
func (r *Resolver) Suggestion(name domain.ColorName) (domain.Suggestion, bool) {
	s, ok := r.Suggestions[name]
	return s, ok
}

// Resolve returns the glyph for name.
func (r *Resolver) Resolve(ctx context.Context, name domain.ColorName) (domain.Glyph, error) {
	a, err := r.Assign(ctx, name)
	if err != nil {
		return "", err
	}
	return a.Glyph, nil
}

// Assign resolves name and reports how the glyph was chosen.
//
// Transparent is always a space and never prompts. A suggested colour is
// asked once and an empty answer takes the default. Any other colour is
// asked until the answer is non-empty. Answers are used verbatim.
func (r *Resolver) Assign(ctx context.Context, name domain.ColorName) (Assignment, error) {
	if name == domain.Transparent {
		return Assignment{Color: name, Glyph: domain.TransparentGlyph}, nil
	}
	if r.Prompter == nil {
		return Assignment{}, fmt.Errorf("%w: %s (no prompter)", domain.ErrNoGlyph, name)
	}

	if s, ok := r.Suggestions[name]; ok {
		answer, err := r.Prompter.Ask(ctx, name, &s)
		if err != nil {
			return Assignment{}, err
		}
		if answer == "" {
			return Assignment{Color: name, Glyph: s.Glyph, Defaulted: true, Prompted: true}, nil
		}
		return Assignment{Color: name, Glyph: domain.Glyph(answer), Prompted: true}, nil
	}

	for {
		if err := ctx.Err(); err != nil {
			return Assignment{}, err
		}
		answer, err := r.Prompter.Ask(ctx, name, nil)
		if err != nil {
			return Assignment{}, err
		}
		if answer != "" {
			return Assignment{Color: name, Glyph: domain.Glyph(answer), Prompted: true}, nil
		}
	}
}
