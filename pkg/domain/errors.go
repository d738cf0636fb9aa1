package domain

import "errors"

// ErrEmptyInput is returned when the export text is empty.
var ErrEmptyInput = errors.New("empty input")

// ErrMarkerNotFound is returned when the export lacks the nested array opening.
var ErrMarkerNotFound = errors.New("array marker not found")

// ErrFrameOutOfRange is returned when a frame index exceeds the frames in the export.
var ErrFrameOutOfRange = errors.New("frame out of range")

// ErrMalformedCode is returned for a cell that is not a 0xAABBGGRR literal.
var ErrMalformedCode = errors.New("malformed color code")

// ErrNoGlyph is returned when a colour has neither a default nor an answer.
var ErrNoGlyph = errors.New("no glyph for color")

// ErrCacheMiss is returned by a ResultCache when the key is absent.
var ErrCacheMiss = errors.New("cache miss")
