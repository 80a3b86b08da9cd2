package palette

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-5

func assertRGB(t *testing.T, want, have Color) {
	t.Helper()
	assert.InDelta(t, want.R, have.R, tol, "red")
	assert.InDelta(t, want.G, have.G, tol, "green")
	assert.InDelta(t, want.B, have.B, tol, "blue")
}

func TestHSLRoundTrip(t *testing.T) {
	steps := []float64{0, 0.1, 0.25, 0.333, 0.5, 0.66, 0.75, 0.9, 1}
	for _, h := range steps {
		for _, s := range steps {
			for _, l := range steps {
				c := HSL(h, s, l, 1)
				hh, ss, ll := c.HSL()
				assertRGB(t, c, HSL(hh, ss, ll, 1))
			}
		}
	}
}

func TestHSLKnownColors(t *testing.T) {
	assertRGB(t, Color{1, 0, 0, 1}, HSL(0, 1, 0.5, 1))
	assertRGB(t, Color{0, 1, 1, 1}, HSL(0.5, 1, 0.5, 1))
	assertRGB(t, White, HSL(0.3, 1, 1, 1))
	assertRGB(t, Black, HSL(0.3, 1, 0, 1))

	h, s, l := Color{0, 0, 1, 1}.HSL()
	assert.InDelta(t, 2.0/3, h, tol)
	assert.InDelta(t, 1, s, tol)
	assert.InDelta(t, 0.5, l, tol)

	h, s, _ = Color{0.4, 0.4, 0.4, 1}.HSL()
	assert.Zero(t, h)
	assert.Zero(t, s)
}

func TestWithHSLKeepsAlpha(t *testing.T) {
	c := Color{1, 0, 0, 0.25}.WithHSL(0.5, 1, 0.5)
	assertRGB(t, Color{0, 1, 1, 1}, c)
	assert.Equal(t, 0.25, c.A)
}

func TestColorConversions(t *testing.T) {
	assert.Equal(t, Color{1, 0, 0.5, 1}, New(2, -1, 0.5, 1))
	assert.Equal(t, color.NRGBA{255, 0, 128, 255}, New(1, 0, 0.5, 1).NRGBA())

	r, g, b, a := Color{1, 0.5, 0, 0.5}.RGBA()
	assert.Equal(t, uint32(0x8000), r)
	assert.Equal(t, uint32(0x4000), g)
	assert.Equal(t, uint32(0), b)
	assert.Equal(t, uint32(0x8000), a)

	mid := Black.Lerp(White, 0.5)
	assert.InDelta(t, 0.5, mid.R, tol)
	assert.Equal(t, 1.0, mid.A)
}

func TestGradient(t *testing.T) {
	img := Gradient(200, 200)
	require.Equal(t, 200, img.Bounds().Dx())
	require.Equal(t, 200, img.Bounds().Dy())

	// Left column is lightness 1.
	assert.Equal(t, color.NRGBA{255, 255, 255, 255}, img.NRGBAAt(0, 57))
	// Middle column, top row: hue 0, lightness 0.5.
	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, img.NRGBAAt(100, 0))
	// Middle column, half way down: hue 0.5.
	assert.Equal(t, color.NRGBA{0, 255, 255, 255}, img.NRGBAAt(100, 100))
}
