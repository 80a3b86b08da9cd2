// Package widget holds the editor's composite widgets: the control-point
// curve editor, the color picker and the color box that opens it.
package widget

import (
	"fmt"
	"image/color"
	"math"

	"github.com/iburimskiy/particle-editor/internal/particles"
	"github.com/iburimskiy/particle-editor/internal/ui"
)

// CurveStyle fixes the curve canvas size, the displayed value range and the
// normalized-x distance within which a point counts as under the cursor.
type CurveStyle struct {
	Width, Height float64
	Min, Max      float64
	Threshold     float64
}

// DefaultCurveStyle matches the size curve of the emitter panel.
func DefaultCurveStyle() CurveStyle {
	return CurveStyle{Width: 200, Height: 50, Min: 0, Max: 2, Threshold: 0.1}
}

// CurveEvent reports what an edit frame did to the curve.
type CurveEvent int

const (
	CurveIdle CurveEvent = iota
	CurveInserted
	CurveDragStarted
	CurveDragged
	CurveDragEnded
)

func (e CurveEvent) String() string {
	switch e {
	case CurveInserted:
		return "inserted"
	case CurveDragStarted:
		return "drag started"
	case CurveDragged:
		return "dragged"
	case CurveDragEnded:
		return "drag ended"
	}
	return "idle"
}

var (
	curveFrame     = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	curvePoint     = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	curvePointNear = color.RGBA{R: 230, G: 128, B: 128, A: 255}
)

const pointMarker = 4.0

// dragPoint is the persisted drag session: the index of the point following
// the cursor while the button is held.
type dragPoint struct {
	Index  int
	Active bool
}

// CurveBox edits curve in place on a canvas laid out at the cursor.
//
// Pressing near an existing point grabs it and the point follows the cursor
// until release. The sequence is not re-sorted during a drag, so the grabbed
// index stays valid even when the point passes a neighbour. Pressing away
// from every point inserts a new one and re-sorts.
//
// The drag session is stored under id, so two curve boxes never share one.
// A drag holds pointer capture under id until the release edge.
func CurveBox(c *ui.Context, id ui.ID, curve *particles.Curve, st CurveStyle) CurveEvent {
	in := c.Input()
	pos := c.Space(st.Width, st.Height)
	d := c.Draw()
	d.StrokeRect(pos, curveFrame)

	span := st.Max - st.Min
	toY := func(v float64) float64 {
		if span == 0 {
			return pos.Y + st.Height
		}
		return pos.Y + (1-(v-st.Min)/span)*st.Height
	}

	t := ui.Clamp01((in.CursorX - pos.X) / st.Width)

	for i := 1; i < len(curve.Points); i++ {
		p0, p1 := curve.Points[i-1], curve.Points[i]
		d.Line(pos.X+p0.X*st.Width, toY(p0.Value), pos.X+p1.X*st.Width, toY(p1.Value), curveFrame)
	}
	for _, p := range curve.Points {
		col := curvePoint
		if math.Abs(p.X-t) < st.Threshold {
			col = curvePointNear
		}
		marker := ui.Rect{
			X: pos.X + p.X*st.Width - pointMarker/2,
			Y: toY(p.Value) - pointMarker/2,
			W: pointMarker,
			H: pointMarker,
		}
		d.Rect(marker, col, col)
	}

	drag := ui.GetOrInit(c.Store(), id.With("dragging point"), dragPoint{})
	if !in.Down || in.Released {
		ended := drag.Active
		*drag = dragPoint{}
		if ended {
			return CurveDragEnded
		}
		return CurveIdle
	}

	value := ui.Clamp(st.Min+(1-(in.CursorY-pos.Y)/st.Height)*span, st.Min, st.Max)

	if drag.Active {
		if drag.Index < 0 || drag.Index >= len(curve.Points) {
			panic(fmt.Sprintf("widget: curve %v drag index %d out of range [0, %d)", id, drag.Index, len(curve.Points)))
		}
		curve.Points[drag.Index] = particles.Point{X: t, Value: value}
		return CurveDragged
	}

	if c.Captured() || !c.Hovered(pos) {
		return CurveIdle
	}
	for i := range curve.Points {
		if math.Abs(curve.Points[i].X-t) < st.Threshold {
			curve.Points[i].Value = value
			*drag = dragPoint{Index: i, Active: true}
			c.Capture(id)
			return CurveDragStarted
		}
	}
	curve.Points = append(curve.Points, particles.Point{X: t, Value: value})
	curve.Sort()
	return CurveInserted
}
