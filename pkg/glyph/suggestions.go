package glyph

import "github.com/aretw0/vaultmap/pkg/domain"

// DefaultSuggestions maps palette colours to Dungeon Crawl map features.
//
// The table names "Light Gray" while the colour table produces "Gray", so
// Gray has no default. Both tables are kept as shipped.
var DefaultSuggestions = map[domain.ColorName]domain.Suggestion{
	"Dark Gray":    {Glyph: "x", Label: "Opaque Rock Wall"},
	"Light Gray":   {Glyph: "c", Label: "Opaque Stone Wall"},
	"White":        {Glyph: "X", Label: "Opaque Permawall"},
	"Dark Cyan":    {Glyph: "m", Label: "Transparent Rock Wall"},
	"Cyan":         {Glyph: "n", Label: "Transparent Stone Wall"},
	"Bright Cyan":  {Glyph: "o", Label: "Transparent Permawall"},
	"Charcoal":     {Glyph: "v", Label: "Metal Wall"},
	"Green":        {Glyph: "b", Label: "Crystal Wall"},
	"Dark Green":   {Glyph: "t", Label: "Tree"},
	"Black":        {Glyph: ".", Label: "Rock Floor"},
	"Dark Blue":    {Glyph: "w", Label: "Deep Water"},
	"Blue":         {Glyph: "W", Label: "Shallow Water"},
	"Dark Red":     {Glyph: "l", Label: "Lava"},
	"Dark Brown":   {Glyph: "+", Label: "Normal Door"},
	"Brown":        {Glyph: "=", Label: "Runed Door"},
	"Pink":         {Glyph: "G", Label: "Granite Statue"},
	"Pale Blue":    {Glyph: "T", Label: "Water Fountain"},
	"Pale Green":   {Glyph: "B", Label: "Altar"},
	"Orange":       {Glyph: "@", Label: "Entry Point"},
	"Plum":         {Glyph: "{", Label: "Stairs Up"},
	"Dark Plum":    {Glyph: "<", Label: "Hatch Up"},
	"Purple":       {Glyph: "}", Label: "Stairs Down"},
	"Dark Purple":  {Glyph: ">", Label: "Hatch Down"},
	"Gold":         {Glyph: "$", Label: "Gold"},
	"Bright Green": {Glyph: "P", Label: "Undefined"},
	"Bright Pink":  {Glyph: "Q", Label: "Custom"},
	"Bright Red":   {Glyph: "R", Label: "Custom"},
}
