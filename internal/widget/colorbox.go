package widget

import (
	"image"
	"image/color"

	"github.com/iburimskiy/particle-editor/internal/palette"
	"github.com/iburimskiy/particle-editor/internal/ui"
)

const (
	swatchOffset = 20.0
	swatchWidth  = 50.0
	popupGap     = 10.0
)

var swatchStroke = color.RGBA{R: 51, G: 51, B: 51, A: 255}

// ColorBox draws a label and a swatch of col. Clicking the swatch toggles a
// ColorPicker popup next to it; the open flag lives in the Store under id.
func ColorBox(c *ui.Context, id ui.ID, label string, col *palette.Color, gradient image.Image) {
	ui.Label(c, label)
	row := c.Space(swatchOffset+swatchWidth, ui.ItemHeight)
	swatch := ui.Rect{X: row.X + swatchOffset, Y: row.Y, W: swatchWidth, H: ui.ItemHeight}
	c.Draw().Rect(swatch, swatchStroke, col.Opaque())

	open := c.Store().Bool(id.With("color picker opened"))
	opened := false
	if c.Clicked(swatch) {
		*open = !*open
		opened = *open
	}
	if !*open {
		return
	}

	popup := ui.Rect{
		X: swatch.X + swatch.W + popupGap,
		Y: swatch.Y,
		W: PickerSize.W,
		H: PickerSize.H,
	}
	if p := c.Panel(); popup.Y+popup.H > p.Y+p.H {
		popup.Y = max(p.Y, p.Y+p.H-popup.H)
	}

	c.BeginOverlay(popup)
	closed := ColorPicker(c, id, col, gradient)
	c.EndOverlay()

	// The press that opened the popup lies outside it.
	if closed && !opened {
		*open = false
	}
}
