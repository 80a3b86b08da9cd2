// Package palette holds the editor's floating-point color type and its
// RGB/HSL conversions.
package palette

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a straight-alpha RGBA color with channels in [0, 1].
type Color struct {
	R, G, B, A float64
}

// Common colors.
var (
	White = Color{1, 1, 1, 1}
	Black = Color{0, 0, 0, 1}
)

// New returns a color with every channel clamped to [0, 1].
func New(r, g, b, a float64) Color {
	return Color{clamp01(r), clamp01(g), clamp01(b), clamp01(a)}
}

// HSL returns a color from hue, saturation and lightness in [0, 1].
func HSL(h, s, l, a float64) Color {
	c := colorful.Hsl(clamp01(h)*360, clamp01(s), clamp01(l))
	return Color{clamp01(c.R), clamp01(c.G), clamp01(c.B), clamp01(a)}
}

// HSL returns hue, saturation and lightness in [0, 1]. Hue is 0 for greys.
func (c Color) HSL() (h, s, l float64) {
	h, s, l = colorful.Color{R: c.R, G: c.G, B: c.B}.Hsl()
	return h / 360, s, l
}

// WithHSL replaces the RGB channels from h, s, l and keeps alpha.
func (c Color) WithHSL(h, s, l float64) Color {
	return HSL(h, s, l, c.A)
}

// Opaque returns c with alpha 1.
func (c Color) Opaque() Color {
	c.A = 1
	return c
}

// Lerp mixes c and d linearly in RGBA space.
func (c Color) Lerp(d Color, t float64) Color {
	t = clamp01(t)
	return Color{
		R: c.R + (d.R-c.R)*t,
		G: c.G + (d.G-c.G)*t,
		B: c.B + (d.B-c.B)*t,
		A: c.A + (d.A-c.A)*t,
	}
}

// RGBA implements color.Color with alpha-premultiplied 16-bit channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	al := clamp01(c.A)
	r = uint32(clamp01(c.R)*al*0xffff + 0.5)
	g = uint32(clamp01(c.G)*al*0xffff + 0.5)
	b = uint32(clamp01(c.B)*al*0xffff + 0.5)
	a = uint32(al*0xffff + 0.5)
	return
}

// NRGBA converts to an 8-bit straight-alpha color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

func (c Color) String() string {
	return fmt.Sprintf("rgba(%.3f, %.3f, %.3f, %.3f)", c.R, c.G, c.B, c.A)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
