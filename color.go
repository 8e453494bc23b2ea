package printplot

import (
	"fmt"
	"image/color"
)

// Colors used by the adjustment functions: a muted slate for box plot
// outlines, plain black for medians and a translucent white for
// legend backgrounds.
var (
	BoxColor    = String2Color("#778899")
	MedianColor = String2Color("black")
	LegendFill  = SetAlpha(BuiltinColors["white"], 0.8)
)

// BuiltinColors is the restrained palette suitable for print. Grays
// are named by their lightness like in R.
var BuiltinColors = map[string]color.RGBA{
	"black":     color.RGBA{0x00, 0x00, 0x00, 0xff},
	"white":     color.RGBA{0xff, 0xff, 0xff, 0xff},
	"gray20":    color.RGBA{0x33, 0x33, 0x33, 0xff},
	"gray40":    color.RGBA{0x66, 0x66, 0x66, 0xff},
	"gray":      color.RGBA{0x7f, 0x7f, 0x7f, 0xff},
	"gray60":    color.RGBA{0x99, 0x99, 0x99, 0xff},
	"gray80":    color.RGBA{0xcc, 0xcc, 0xcc, 0xff},
	"slategray": color.RGBA{0x77, 0x88, 0x99, 0xff},
	"blue":      color.RGBA{0x00, 0x00, 0xff, 0xff},
}

// String2Color turns "#rrggbb", "#rrggbbaa" or a BuiltinColors name
// into a color. Unknown strings yield mid gray.
func String2Color(s string) color.Color {
	if len(s) >= 7 && s[0] == '#' {
		var r, g, b, a uint8
		fmt.Sscanf(s[1:3], "%2x", &r)
		fmt.Sscanf(s[3:5], "%2x", &g)
		fmt.Sscanf(s[5:7], "%2x", &b)
		a = 0xff
		if len(s) >= 9 {
			fmt.Sscanf(s[7:9], "%2x", &a)
		}
		return color.NRGBA{r, g, b, a}
	}
	if col, ok := BuiltinColors[s]; ok {
		return col
	}

	return BuiltinColors["gray"]
}

// Set alpha to a in color c. TODO: scale an existing alpha instead of
// replacing it.
func SetAlpha(c color.Color, a float64) color.Color {
	r, g, b, _ := c.RGBA()
	r >>= 8
	g >>= 8
	b >>= 8
	a *= float64(0xff)
	return color.NRGBA{uint8(r), uint8(g), uint8(b), uint8(a)}
}
