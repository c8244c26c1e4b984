package geoart

import (
	"fmt"
	"image/color"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	return RGBA{
		R: float64(r) / 65535,
		G: float64(g) / 65535,
		B: float64(b) / 65535,
		A: float64(a) / 65535,
	}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without
// a leading '#'. Malformed strings yield opaque black.
func Hex(hex string) RGBA {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3: // RGB
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
		parseHex(hex[6:8], &a)
	default:
		return RGBA{R: 0, G: 0, B: 0, A: 1}
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return
		}
	}
}

// Hex returns the color formatted as "#rrggbb". Alpha is not included;
// the drawing style carries it separately as opacity.
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x",
		uint8(clamp255(c.R*255)),
		uint8(clamp255(c.G*255)),
		uint8(clamp255(c.B*255)))
}

// WithAlpha returns the color with its alpha replaced.
func (c RGBA) WithAlpha(a float64) RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: a}
}

// Lerp performs linear interpolation between two colors.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// Over composites c over dst using source-over alpha blending and returns
// the result. The output alpha is c.A + dst.A*(1-c.A), so painting onto an
// opaque destination always yields an opaque result.
func (c RGBA) Over(dst RGBA) RGBA {
	srcA := c.A
	if srcA <= 0 {
		return dst
	}
	if srcA >= 1 {
		return c
	}
	invA := 1 - srcA
	outA := srcA + dst.A*invA
	if outA <= 0 {
		return RGBA{}
	}
	return RGBA{
		R: (c.R*srcA + dst.R*dst.A*invA) / outA,
		G: (c.G*srcA + dst.G*dst.A*invA) / outA,
		B: (c.B*srcA + dst.B*dst.A*invA) / outA,
		A: outA,
	}
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Background is the canvas background color.
var Background = Hex("#0a0a0a")

// PaletteColor is a named entry in the fixed drawing palette.
type PaletteColor struct {
	Name  string
	Color RGBA
}

// Palette is the fixed set of twelve drawing colors offered by the UI.
// The background color is a separate, thirteenth choice.
var Palette = []PaletteColor{
	{"ivory", Hex("#e8e4da")},
	{"teal", Hex("#6bb5c7")},
	{"rust", Hex("#c75b39")},
	{"ochre", Hex("#d9a441")},
	{"sage", Hex("#8aa47c")},
	{"plum", Hex("#7c5d80")},
	{"rose", Hex("#c98ca7")},
	{"indigo", Hex("#46589c")},
	{"moss", Hex("#5c6e41")},
	{"coral", Hex("#e0785a")},
	{"slate", Hex("#5e6b73")},
	{"gold", Hex("#c7a96b")},
}

// PaletteColorByName returns the palette entry with the given name.
func PaletteColorByName(name string) (RGBA, bool) {
	for _, p := range Palette {
		if p.Name == name {
			return p.Color, true
		}
	}
	return RGBA{}, false
}
