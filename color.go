package canvas

import (
	"image/color"
	"strconv"

	"github.com/disasterengine/canvas/internal/blend"
	"github.com/disasterengine/canvas/internal/mathx"
)

// Color32 is a straight-alpha RGBA8 colour.
type Color32 struct {
	R, G, B, A uint8
}

// Common colours.
var (
	Transparent = Color32{}
	Black       = Color32{A: 255}
	White       = Color32{R: 255, G: 255, B: 255, A: 255}
	Magenta     = Color32{R: 255, B: 255, A: 255}
)

// Palette is the fixed 16-colour palette addressed by $cN text escapes.
var Palette = [16]Color32{
	{0x00, 0x00, 0x00, 0xff},
	{0x1d, 0x2b, 0x53, 0xff},
	{0x7e, 0x25, 0x53, 0xff},
	{0x00, 0x87, 0x51, 0xff},
	{0xab, 0x52, 0x36, 0xff},
	{0x5f, 0x57, 0x4f, 0xff},
	{0xc2, 0xc3, 0xc7, 0xff},
	{0xff, 0xf1, 0xe8, 0xff},
	{0xff, 0x00, 0x4d, 0xff},
	{0xff, 0xa3, 0x00, 0xff},
	{0xff, 0xec, 0x27, 0xff},
	{0x00, 0xe4, 0x36, 0xff},
	{0x29, 0xad, 0xff, 0xff},
	{0x83, 0x76, 0x9c, 0xff},
	{0xff, 0x77, 0xa8, 0xff},
	{0xff, 0xcc, 0xaa, 0xff},
}

// DefaultTextColor is the colour of styled text outside any $cN run.
var DefaultTextColor = Palette[7]

// ShadowColor tints the $s drop shadow.
var ShadowColor = Palette[0]

// RGBA returns an opaque-or-not colour from components.
func RGBA(r, g, b, a uint8) Color32 {
	return Color32{R: r, G: g, B: b, A: a}
}

// Hex parses "RGB", "RGBA", "RRGGBB" or "RRGGBBAA" with an optional '#'.
// Invalid input gives opaque black.
func Hex(hex string) Color32 {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Black
	}
	switch len(hex) {
	case 3:
		return Color32{R: uint8(v>>8&0xf) * 17, G: uint8(v>>4&0xf) * 17, B: uint8(v&0xf) * 17, A: 255}
	case 4:
		return Color32{R: uint8(v>>12&0xf) * 17, G: uint8(v>>8&0xf) * 17, B: uint8(v>>4&0xf) * 17, A: uint8(v&0xf) * 17}
	case 6:
		return Color32{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
	case 8:
		return Color32{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
	}
	return Black
}

// FromColor converts a standard colour.
func FromColor(c color.Color) Color32 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color32{R: n.R, G: n.G, B: n.B, A: n.A}
}

// NRGBA implements conversion to the standard library colour.
func (c Color32) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Lerp interpolates every channel including alpha; t is clamped to [0,1].
func (c Color32) Lerp(to Color32, t float64) Color32 {
	t = mathx.Clamp(t, 0, 1)
	return Color32{
		R: mathx.Clamp255(mathx.Lerp(c.R, to.R, t)),
		G: mathx.Clamp255(mathx.Lerp(c.G, to.G, t)),
		B: mathx.Clamp255(mathx.Lerp(c.B, to.B, t)),
		A: mathx.Clamp255(mathx.Lerp(c.A, to.A, t)),
	}
}

// Shade scales the colour channels by f in [0,1], keeping alpha.
func (c Color32) Shade(f float64) Color32 {
	f = mathx.Clamp(f, 0, 1)
	return Color32{
		R: mathx.Clamp255(float64(c.R) * f),
		G: mathx.Clamp255(float64(c.G) * f),
		B: mathx.Clamp255(float64(c.B) * f),
		A: c.A,
	}
}

// MulAlpha scales alpha by f in [0,1].
func (c Color32) MulAlpha(f float64) Color32 {
	c.A = mathx.Clamp255(float64(c.A) * mathx.Clamp(f, 0, 1))
	return c
}

func (c Color32) pixel() blend.Pixel {
	return blend.Pixel{R: c.R, G: c.G, B: c.B, A: c.A}
}
