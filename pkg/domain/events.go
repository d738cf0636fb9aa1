package domain

import (
	"context"
	"time"
)

// EventType defines the pipeline stage an event reports on.
type EventType string

const (
	EventParsed        EventType = "parsed"
	EventColorResolved EventType = "color_resolved"
	EventGlyphAssigned EventType = "glyph_assigned"
	EventRendered      EventType = "rendered"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// GridEvent reports the shape of a grid produced by a stage.
type GridEvent struct {
	EventBase
	Rows     int `json:"rows"`
	Width    int `json:"width"`
	Cells    int `json:"cells"`
	Distinct int `json:"distinct,omitempty"`
}

// GlyphEvent reports one colour to glyph assignment.
type GlyphEvent struct {
	EventBase
	Color     ColorName `json:"color"`
	Glyph     Glyph     `json:"glyph"`
	Defaulted bool      `json:"defaulted"`
	Prompted  bool      `json:"prompted"`
}

// RenderEvent reports a finished conversion.
type RenderEvent struct {
	EventBase
	Lines    int           `json:"lines"`
	Duration time.Duration `json:"duration"`
}

// Hooks defines callbacks for pipeline observability. Any field may be nil.
type Hooks struct {
	OnParsed        func(context.Context, *GridEvent)
	OnColorResolved func(context.Context, *GridEvent)
	OnGlyphAssigned func(context.Context, *GlyphEvent)
	OnRendered      func(context.Context, *RenderEvent)
}
