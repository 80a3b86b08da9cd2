package ui

import "image/color"

// Layout metrics shared by all widgets.
const (
	ItemHeight = 18.0
	Spacing    = 4.0
	CharWidth  = 6.0 // matches the ebitenutil debug font
	Padding    = 5.0
)

// Theme colors.
var (
	ColorText       = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	ColorFrame      = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	ColorWidget     = color.RGBA{R: 60, G: 64, B: 72, A: 255}
	ColorWidgetHot  = color.RGBA{R: 80, G: 100, B: 140, A: 255}
	ColorAccent     = color.RGBA{R: 150, G: 170, B: 200, A: 255}
	ColorPanel      = color.RGBA{R: 30, G: 32, B: 38, A: 230}
	ColorPopupFrame = color.RGBA{R: 179, G: 179, B: 179, A: 255}
	ColorPopupFill  = color.RGBA{R: 44, G: 48, B: 56, A: 255}
)

type layout struct {
	x, y, w float64
}

// Context drives one immediate-mode UI. Call Begin, build widgets, call End,
// then Replay the recorded commands onto a Canvas.
//
// The pointer-capture and overlay state carried between frames lives here;
// everything else a widget needs to remember goes into the Store.
type Context struct {
	store *Store
	in    Input

	base, overlay DrawList
	layer         *DrawList
	inOverlay     bool

	panel    Rect
	lay      layout
	saved    layout
	last     Rect
	active   ID
	blockers []Rect
	pending  []Rect
}

// NewContext returns a Context backed by store.
func NewContext(store *Store) *Context {
	c := &Context{store: store}
	c.layer = &c.base
	return c
}

// Begin starts a frame with input in and a panel whose top-left corner and
// width fix the layout cursor.
func (c *Context) Begin(in Input, panel Rect) {
	c.in = in
	c.panel = panel
	c.base.Reset()
	c.overlay.Reset()
	c.layer = &c.base
	c.inOverlay = false
	c.lay = layout{x: panel.X + Padding, y: panel.Y + Padding, w: panel.W - 2*Padding}
	c.last = Rect{}
	if !in.Down || in.Released {
		c.active = 0
	}
	c.pending = c.pending[:0]
	c.base.Rect(panel, ColorFrame, ColorPanel)
}

// End finishes the frame. Overlay rectangles drawn during this frame block
// base-layer hover in the next one.
func (c *Context) End() {
	c.blockers = append(c.blockers[:0], c.pending...)
}

// Replay draws the base layer and then the overlay layer.
func (c *Context) Replay(dst Canvas) {
	c.base.Replay(dst)
	c.overlay.Replay(dst)
}

// Panel returns the rectangle passed to Begin.
func (c *Context) Panel() Rect { return c.panel }

// Store returns the persistent widget state.
func (c *Context) Store() *Store { return c.store }

// Input returns this frame's input snapshot.
func (c *Context) Input() Input { return c.in }

// Draw returns the layer widgets should draw into.
func (c *Context) Draw() *DrawList { return c.layer }

// Layers exposes the recorded base and overlay commands.
func (c *Context) Layers() (base, overlay *DrawList) { return &c.base, &c.overlay }

// Captured reports whether some widget holds the pointer.
func (c *Context) Captured() bool { return c.active != 0 }

// Active returns the widget holding the pointer, or 0.
func (c *Context) Active() ID { return c.active }

// Capture gives the pointer to id until the primary button is released.
func (c *Context) Capture(id ID) { c.active = id }

// Hovered reports whether the cursor is over r and r is not hidden behind an
// overlay from the previous frame.
func (c *Context) Hovered(r Rect) bool {
	if !c.in.Over(r) {
		return false
	}
	if c.inOverlay {
		return true
	}
	for _, b := range c.blockers {
		if c.in.Over(b) {
			return false
		}
	}
	return true
}

// Clicked reports a primary press over r in this frame.
func (c *Context) Clicked(r Rect) bool {
	return c.in.Pressed && c.Hovered(r)
}

// Space reserves a w×h slot at the layout cursor and advances it.
// A non-positive w takes the full layout width.
func (c *Context) Space(w, h float64) Rect {
	if w <= 0 {
		w = c.lay.w
	}
	r := Rect{X: c.lay.x, Y: c.lay.y, W: w, H: h}
	c.lay.y += h + Spacing
	c.last = r
	return r
}

// Cursor returns the layout cursor position.
func (c *Context) Cursor() (float64, float64) { return c.lay.x, c.lay.y }

// Width returns the layout width.
func (c *Context) Width() float64 { return c.lay.w }

// Last returns the rectangle of the most recently laid out item.
func (c *Context) Last() Rect { return c.last }

// LastClicked reports a press on the last laid out item.
func (c *Context) LastClicked() bool { return c.Clicked(c.last) }

// Indent shifts the layout cursor right by d (negative to undo).
func (c *Context) Indent(d float64) {
	c.lay.x += d
	c.lay.w -= d
}

// BeginOverlay redirects drawing and layout into a popup occupying r. The
// layout cursor starts inside r's padding, as for the panel. Overlays do not
// nest.
func (c *Context) BeginOverlay(r Rect) {
	if c.inOverlay {
		panic("ui: nested overlay")
	}
	c.saved = c.lay
	c.lay = layout{x: r.X + Padding, y: r.Y + Padding, w: r.W - 2*Padding}
	c.layer = &c.overlay
	c.inOverlay = true
	c.pending = append(c.pending, r)
}

// EndOverlay returns to the base layer and its layout cursor.
func (c *Context) EndOverlay() {
	c.lay = c.saved
	c.layer = &c.base
	c.inOverlay = false
}
