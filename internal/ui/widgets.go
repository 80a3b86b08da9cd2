package ui

import (
	"fmt"
	"math"
)

const (
	// sliderShare is the fraction of the row taken by a slider track.
	sliderShare = 0.55
	checkSize   = 14.0
)

func textWidth(s string) float64 { return float64(len(s)) * CharWidth }

// Label draws one line of text.
func Label(c *Context, text string) {
	r := c.Space(textWidth(text), ItemHeight)
	c.Draw().Text(r.X, r.Y+1, text)
}

// Separator draws a horizontal rule across the layout width.
func Separator(c *Context) {
	r := c.Space(0, Spacing)
	c.Draw().Line(r.X, r.Y+r.H/2, r.X+r.W, r.Y+r.H/2, ColorFrame)
}

// Button draws a labelled button and reports whether it was clicked.
func Button(c *Context, label string) bool {
	r := c.Space(textWidth(label)+4*Padding, ItemHeight+2)
	fill := ColorWidget
	if c.Hovered(r) {
		fill = ColorWidgetHot
	}
	d := c.Draw()
	d.Rect(r, ColorAccent, fill)
	d.Text(r.X+2*Padding, r.Y+2, label)
	return c.Clicked(r)
}

// Checkbox toggles *v on click and reports whether it changed.
func Checkbox(c *Context, label string, v *bool) bool {
	r := c.Space(checkSize+Padding+textWidth(label), ItemHeight)
	box := Rect{X: r.X, Y: r.Y + (r.H-checkSize)/2, W: checkSize, H: checkSize}
	changed := false
	if c.Clicked(r) {
		*v = !*v
		changed = true
	}
	d := c.Draw()
	d.Rect(box, ColorAccent, ColorWidget)
	if *v {
		d.FillRect(Rect{X: box.X + 3, Y: box.Y + 3, W: box.W - 6, H: box.H - 6}, ColorAccent)
	}
	d.Text(box.X+box.W+Padding, r.Y+1, label)
	return changed
}

// Combo cycles *sel through options on click. It reports whether the
// selection changed.
func Combo(c *Context, label string, options []string, sel *int) bool {
	if len(options) == 0 {
		return false
	}
	if *sel < 0 || *sel >= len(options) {
		*sel = 0
	}
	r := c.Space(0, ItemHeight)
	box := Rect{X: r.X, Y: r.Y, W: r.W * sliderShare, H: r.H}
	changed := false
	if c.Clicked(box) {
		*sel = (*sel + 1) % len(options)
		changed = true
	}
	fill := ColorWidget
	if c.Hovered(box) {
		fill = ColorWidgetHot
	}
	d := c.Draw()
	d.Rect(box, ColorFrame, fill)
	d.Text(box.X+Padding, r.Y+1, "< "+options[*sel]+" >")
	d.Text(box.X+box.W+Padding, r.Y+1, label)
	return changed
}

// Section draws a collapsible header and reports whether it is expanded.
// The expanded flag is kept in the Store under id.
func Section(c *Context, id ID, label string, open bool) bool {
	expanded := GetOrInit(c.Store(), id, open)
	r := c.Space(0, ItemHeight)
	if c.Clicked(r) {
		*expanded = !*expanded
	}
	mark := "+ "
	if *expanded {
		mark = "- "
	}
	c.Draw().Text(r.X, r.Y+1, mark+label)
	return *expanded
}

// Slider edits *v within [lo, hi]. Pressing on the track captures the
// pointer until release; while captured the value follows the cursor.
// It reports whether *v changed this frame.
func Slider(c *Context, id ID, label string, lo, hi float64, v *float64) bool {
	r := c.Space(0, ItemHeight)
	track := Rect{X: r.X, Y: r.Y, W: r.W * sliderShare, H: r.H}

	in := c.Input()
	if in.Pressed && !c.Captured() && c.Hovered(track) {
		c.Capture(id)
	}
	changed := false
	if c.Active() == id && in.Down && track.W > 0 {
		t := Clamp01((in.CursorX - track.X) / track.W)
		nv := lo + t*(hi-lo)
		if nv != *v {
			*v = nv
			changed = true
		}
	}

	frac := 0.0
	if hi > lo {
		frac = Clamp01((*v - lo) / (hi - lo))
	}
	d := c.Draw()
	d.Rect(track, ColorFrame, ColorWidget)
	handle := Rect{X: track.X + frac*track.W - 2, Y: track.Y, W: 4, H: track.H}
	if c.Active() == id {
		d.FillRect(handle, ColorAccent)
	} else {
		d.FillRect(handle, ColorFrame)
	}
	d.Text(track.X+Padding, r.Y+1, formatValue(*v))
	d.Text(track.X+track.W+Padding, r.Y+1, label)
	return changed
}

// SliderInt is Slider for integer fields.
func SliderInt(c *Context, id ID, label string, lo, hi int, v *int) bool {
	f := float64(*v)
	if !Slider(c, id, label, float64(lo), float64(hi), &f) {
		return false
	}
	n := int(math.Round(f))
	if n == *v {
		return false
	}
	*v = n
	return true
}

func formatValue(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e6 {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}
