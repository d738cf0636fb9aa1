package palette

import "github.com/aretw0/vaultmap/pkg/domain"

// DefaultColors maps the export codes of the house sprite palette to names.
// Keys are matched exactly, so casing matters.
//
// "0xffco0080" is not valid hex and never matches a real export. It is kept
// as it has always been shipped; the intended value is unknown.
var DefaultColors = map[domain.ColorCode]domain.ColorName{
	"0xff808080": "Dark Gray",
	"0xffc0c0c0": "Gray",
	"0xffffffff": "White",
	"0xff808000": "Dark Cyan",
	"0xffbfbf00": "Cyan",
	"0xffffff00": "Bright Cyan",
	"0xff404040": "Charcoal",
	"0xff00c000": "Green",
	"0xff008000": "Dark Green",
	"0xff000000": "Black",
	"0xff800000": "Dark Blue",
	"0xffc00000": "Blue",
	"0xff000080": "Dark Red",
	"0xff004080": "Dark Brown",
	"0xff0060c0": "Brown",
	"0xffc080ff": "Pink",
	"0xffff80c0": "Pale Blue",
	"0xff80ff80": "Pale Green",
	"0xff0080ff": "Orange",
	"0xff8000c0": "Plum",
	"0xff600080": "Dark Plum",
	"0xffco0080": "Purple",
	"0xff800060": "Dark Purple",
	"0xff00dfff": "Gold",
	"0xff00ff00": "Bright Green",
	"0xffc000ff": "Bright Pink",
	"0xff0000ff": "Bright Red",
}
