package widget

import (
	"image"
	"image/color"

	"github.com/iburimskiy/particle-editor/internal/palette"
	"github.com/iburimskiy/particle-editor/internal/ui"
)

// Picker geometry relative to the popup's layout cursor.
const (
	SurfaceSize   = 200.0
	previewHeight = 18.0
	headerHeight  = previewHeight + 2 + SurfaceSize

	// Seven sliders, three separators and the ok button.
	bodyHeight = 7*(ui.ItemHeight+ui.Spacing) + 3*2*ui.Spacing + ui.ItemHeight + 2

	pickerWidth  = SurfaceSize
	pickerHeight = headerHeight + ui.Spacing + bodyHeight
	closeMargin  = 5.0
	pickerMarker = 7.0
)

// PickerSize is the outer size of the picker popup, padding included.
var PickerSize = struct{ W, H float64 }{
	W: pickerWidth + 2*ui.Padding,
	H: pickerHeight + 2*ui.Padding,
}

var (
	markerStroke  = color.RGBA{R: 77, G: 77, B: 77, A: 255}
	previewStroke = color.RGBA{A: 255}
)

type pickerLayout struct {
	panel, preview, surface, close ui.Rect
}

func layoutPicker(x, y float64) pickerLayout {
	panel := ui.Rect{X: x - ui.Padding, Y: y - ui.Padding, W: PickerSize.W, H: PickerSize.H}
	return pickerLayout{
		panel:   panel,
		preview: ui.Rect{X: x, Y: y, W: pickerWidth, H: previewHeight},
		surface: ui.Rect{X: x, Y: y + previewHeight + 2, W: SurfaceSize, H: SurfaceSize},
		close:   panel.Expand(closeMargin),
	}
}

// surfaceHSL maps a cursor position on the gradient surface to hue and
// lightness, clamped to the surface.
func surfaceHSL(s ui.Rect, x, y float64) (hue, lightness float64) {
	lightness = 1 - ui.Clamp01((x-s.X)/s.W)
	hue = ui.Clamp01((y - s.Y) / s.H)
	return hue, lightness
}

// ColorPicker edits col through the gradient surface and RGBA/HSL sliders,
// laid out at the cursor. gradient must be the texture produced by
// palette.Gradient for the surface size. It reports whether the picker
// should close: ok was clicked, Escape or Enter is held, or the button was
// pressed outside the popup.
func ColorPicker(c *ui.Context, id ui.ID, col *palette.Color, gradient image.Image) bool {
	x, y := c.Cursor()
	lay := layoutPicker(x, y)
	c.Space(pickerWidth, headerHeight)

	in := c.Input()
	surfaceID := id.With("surface")
	if in.Pressed && !c.Captured() && c.Hovered(lay.surface) {
		c.Capture(surfaceID)
	}
	if c.Active() == surfaceID && c.Hovered(lay.surface) {
		hue, lightness := surfaceHSL(lay.surface, in.CursorX, in.CursorY)
		*col = col.WithHSL(hue, 1, lightness)
	}

	d := c.Draw()
	d.Rect(lay.panel, ui.ColorPopupFrame, ui.ColorPopupFill)
	d.Rect(lay.preview, previewStroke, col.Opaque())
	d.Image(lay.surface, gradient)

	h, _, l := col.HSL()
	d.Rect(ui.Rect{
		X: lay.surface.X + (1-l)*SurfaceSize - pickerMarker/2,
		Y: lay.surface.Y + h*SurfaceSize - pickerMarker/2,
		W: pickerMarker,
		H: pickerMarker,
	}, markerStroke, palette.White)

	ui.Slider(c, id.With("alpha"), "Alpha", 0, 1, &col.A)
	ui.Separator(c)

	ui.Slider(c, id.With("red"), "Red", 0, 1, &col.R)
	ui.Slider(c, id.With("green"), "Green", 0, 1, &col.G)
	ui.Slider(c, id.With("blue"), "Blue", 0, 1, &col.B)
	ui.Separator(c)

	// HSL is derived after the RGB sliders and written back, so an HSL edit
	// wins over the RGB values shown this frame.
	h, s, l := col.HSL()
	ui.Slider(c, id.With("hue"), "Hue", 0, 1, &h)
	ui.Slider(c, id.With("saturation"), "Saturation", 0, 1, &s)
	ui.Slider(c, id.With("lightness"), "Lightness", 0, 1, &l)
	*col = col.WithHSL(h, s, l)
	ui.Separator(c)

	ok := ui.Button(c, "    ok    ")
	return ok ||
		in.KeyDown(ui.KeyEscape) ||
		in.KeyDown(ui.KeyEnter) ||
		(in.Pressed && !in.Over(lay.close))
}
