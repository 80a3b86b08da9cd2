package ui

import (
	"image"
	"image/color"
)

// Canvas is a drawing backend.
type Canvas interface {
	FillRect(r Rect, fill color.Color)
	StrokeRect(r Rect, stroke color.Color)
	Line(x0, y0, x1, y1 float64, c color.Color)
	Image(r Rect, img image.Image)
	Text(x, y float64, s string)
}

// OpKind tags a recorded draw command.
type OpKind int

const (
	OpFill OpKind = iota
	OpStroke
	OpLine
	OpImage
	OpText
)

// Op is one recorded draw command.
type Op struct {
	Kind  OpKind
	Rect  Rect // fills, strokes and images; lines use X,Y to X+W,Y+H
	Color color.Color
	Img   image.Image
	Text  string
}

// DrawList records draw commands so the UI can be built during Update and
// drawn later.
type DrawList struct {
	Ops []Op
}

func (l *DrawList) FillRect(r Rect, fill color.Color) {
	l.Ops = append(l.Ops, Op{Kind: OpFill, Rect: r, Color: fill})
}

func (l *DrawList) StrokeRect(r Rect, stroke color.Color) {
	l.Ops = append(l.Ops, Op{Kind: OpStroke, Rect: r, Color: stroke})
}

// Rect fills and outlines r. A nil color skips that part.
func (l *DrawList) Rect(r Rect, stroke, fill color.Color) {
	if fill != nil {
		l.FillRect(r, fill)
	}
	if stroke != nil {
		l.StrokeRect(r, stroke)
	}
}

func (l *DrawList) Line(x0, y0, x1, y1 float64, c color.Color) {
	l.Ops = append(l.Ops, Op{Kind: OpLine, Rect: Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}, Color: c})
}

func (l *DrawList) Image(r Rect, img image.Image) {
	l.Ops = append(l.Ops, Op{Kind: OpImage, Rect: r, Img: img})
}

func (l *DrawList) Text(x, y float64, s string) {
	l.Ops = append(l.Ops, Op{Kind: OpText, Rect: Rect{X: x, Y: y}, Text: s})
}

// Reset drops all commands, keeping the backing storage.
func (l *DrawList) Reset() { l.Ops = l.Ops[:0] }

// Replay issues every recorded command to c in order.
func (l *DrawList) Replay(c Canvas) {
	for _, op := range l.Ops {
		switch op.Kind {
		case OpFill:
			c.FillRect(op.Rect, op.Color)
		case OpStroke:
			c.StrokeRect(op.Rect, op.Color)
		case OpLine:
			c.Line(op.Rect.X, op.Rect.Y, op.Rect.X+op.Rect.W, op.Rect.Y+op.Rect.H, op.Color)
		case OpImage:
			c.Image(op.Rect, op.Img)
		case OpText:
			c.Text(op.Rect.X, op.Rect.Y, op.Text)
		}
	}
}
