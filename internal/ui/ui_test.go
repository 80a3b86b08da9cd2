package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	assert.Equal(t, NewID("color box", "Start"), NewID("color box", "Start"))
	assert.NotEqual(t, NewID("color box", "Start"), NewID("color box", "End"))
	assert.NotEqual(t, NewID("ab", "c"), NewID("a", "bc"))
	assert.NotEqual(t, NewID("a"), NewID("a", ""))

	parent := NewID("size curve")
	assert.Equal(t, parent.With("dragging point"), parent.With("dragging point"))
	assert.NotEqual(t, parent.With("dragging point"), NewID("other").With("dragging point"))
	assert.NotEqual(t, parent, parent.With())
	assert.NotZero(t, parent)
}

func TestStoreGetOrInit(t *testing.T) {
	s := NewStore()
	id := NewID("flag")

	p := s.Bool(id)
	assert.False(t, *p)
	*p = true
	assert.True(t, *s.Bool(id))
	assert.Same(t, p, s.Bool(id))

	n := GetOrInit(s, NewID("count"), 7)
	assert.Equal(t, 7, *n)
	*n = 9
	assert.Equal(t, 9, *GetOrInit(s, NewID("count"), 7))
	assert.Equal(t, 2, s.Len())
}

func TestStoreTypeMismatchPanics(t *testing.T) {
	s := NewStore()
	id := NewID("slot")
	s.Bool(id)
	assert.Panics(t, func() { GetOrInit(s, id, 0) })
}

func TestRect(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 100, H: 50}
	assert.True(t, r.Contains(10, 20))
	assert.True(t, r.Contains(110, 70))
	assert.False(t, r.Contains(111, 30))
	assert.Equal(t, Rect{X: 5, Y: 15, W: 110, H: 60}, r.Expand(5))
	assert.Equal(t, 0.0, Clamp01(-3))
	assert.Equal(t, 1.0, Clamp01(3))
	assert.Equal(t, 2.0, Clamp(2, 0, 4))
}

var panel = Rect{X: 0, Y: 0, W: 300, H: 600}

func frame(c *Context, in Input, build func()) {
	c.Begin(in, panel)
	build()
	c.End()
}

func TestSliderCapture(t *testing.T) {
	c := NewContext(NewStore())
	id := NewID("slider")
	v := 0.0
	var track Rect
	frame(c, Input{}, func() {
		Slider(c, id, "Value", 0, 10, &v)
		track = c.Last()
		track.W *= sliderShare
	})
	require.False(t, c.Captured())

	mid := track.X + track.W/2
	frame(c, Input{CursorX: mid, CursorY: track.Y + 2, Down: true, Pressed: true}, func() {
		assert.True(t, Slider(c, id, "Value", 0, 10, &v))
	})
	assert.InDelta(t, 5, v, 1e-9)
	assert.Equal(t, id, c.Active())

	// Dragging far outside the track keeps the capture and clamps.
	frame(c, Input{CursorX: track.X + 10*track.W, CursorY: 400, Down: true}, func() {
		Slider(c, id, "Value", 0, 10, &v)
	})
	assert.Equal(t, 10.0, v)

	frame(c, Input{CursorX: mid, CursorY: track.Y + 2, Released: true}, func() {
		assert.False(t, Slider(c, id, "Value", 0, 10, &v))
	})
	assert.False(t, c.Captured())
	assert.Equal(t, 10.0, v)
}

func TestCheckboxAndSection(t *testing.T) {
	c := NewContext(NewStore())
	on := false
	var box, header Rect
	sec := NewID("section")
	frame(c, Input{}, func() {
		Checkbox(c, "Emitting", &on)
		box = c.Last()
		Section(c, sec, "Time", false)
		header = c.Last()
	})
	frame(c, Input{CursorX: box.X + 1, CursorY: box.Y + 1, Down: true, Pressed: true}, func() {
		assert.True(t, Checkbox(c, "Emitting", &on))
		assert.False(t, Section(c, sec, "Time", false))
	})
	assert.True(t, on)
	frame(c, Input{CursorX: header.X + 1, CursorY: header.Y + 1, Down: true, Pressed: true}, func() {
		Checkbox(c, "Emitting", &on)
		assert.True(t, Section(c, sec, "Time", false))
	})
	assert.True(t, on)
}

func TestComboCycles(t *testing.T) {
	c := NewContext(NewStore())
	sel := 1
	var r Rect
	frame(c, Input{}, func() {
		Combo(c, "Shape", []string{"a", "b", "c"}, &sel)
		r = c.Last()
	})
	click := Input{CursorX: r.X + 1, CursorY: r.Y + 1, Down: true, Pressed: true}
	frame(c, click, func() { Combo(c, "Shape", []string{"a", "b", "c"}, &sel) })
	frame(c, click, func() { Combo(c, "Shape", []string{"a", "b", "c"}, &sel) })
	assert.Equal(t, 0, sel)
}

func TestOverlayBlocksBaseNextFrame(t *testing.T) {
	c := NewContext(NewStore())
	popup := Rect{X: 0, Y: 0, W: 300, H: 300}
	var clicked bool
	build := func() {
		clicked = Button(c, "under")
		c.BeginOverlay(popup)
		c.Draw().FillRect(popup, ColorPopupFill)
		c.EndOverlay()
	}
	click := Input{CursorX: Padding + 1, CursorY: Padding + 1, Down: true, Pressed: true}

	// First frame: no overlay known yet.
	frame(c, click, build)
	assert.True(t, clicked)

	frame(c, click, build)
	assert.False(t, clicked)

	base, overlay := c.Layers()
	assert.NotEmpty(t, base.Ops)
	require.Len(t, overlay.Ops, 1)
	assert.Equal(t, OpFill, overlay.Ops[0].Kind)
}

type countingCanvas struct {
	DrawList
}

func TestReplayOrder(t *testing.T) {
	c := NewContext(NewStore())
	frame(c, Input{}, func() {
		c.BeginOverlay(Rect{W: 10, H: 10})
		c.Draw().Text(1, 1, "top")
		c.EndOverlay()
		Label(c, "bottom")
	})
	var dst countingCanvas
	c.Replay(&dst)
	require.NotEmpty(t, dst.Ops)
	last := dst.Ops[len(dst.Ops)-1]
	assert.Equal(t, "top", last.Text)
}
