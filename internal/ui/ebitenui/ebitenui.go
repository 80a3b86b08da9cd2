// Package ebitenui connects the ui core to ebiten: it samples input into a
// ui.Input and replays draw lists onto an *ebiten.Image.
package ebitenui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/particle-editor/internal/ui"
)

var keys = map[ui.Key][]ebiten.Key{
	ui.KeyEscape: {ebiten.KeyEscape},
	ui.KeyEnter:  {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
	ui.KeyQ:      {ebiten.KeyQ},
}

// PollInput samples the current frame's pointer and key state.
func PollInput() ui.Input {
	x, y := ebiten.CursorPosition()
	in := ui.Input{
		CursorX:  float64(x),
		CursorY:  float64(y),
		Down:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Pressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Released: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		Keys:     map[ui.Key]bool{},
	}
	for k, eks := range keys {
		for _, ek := range eks {
			if ebiten.IsKeyPressed(ek) {
				in.Keys[k] = true
			}
		}
	}
	return in
}

// Canvas draws onto an ebiten image. Textures that are not already
// *ebiten.Image are uploaded once and cached.
type Canvas struct {
	Screen   *ebiten.Image
	textures map[image.Image]*ebiten.Image
}

// NewCanvas returns a Canvas with an empty texture cache.
func NewCanvas() *Canvas {
	return &Canvas{textures: map[image.Image]*ebiten.Image{}}
}

func (c *Canvas) FillRect(r ui.Rect, fill color.Color) {
	vector.DrawFilledRect(c.Screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), fill, false)
}

func (c *Canvas) StrokeRect(r ui.Rect, stroke color.Color) {
	vector.StrokeRect(c.Screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, stroke, false)
}

func (c *Canvas) Line(x0, y0, x1, y1 float64, col color.Color) {
	vector.StrokeLine(c.Screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, col, true)
}

func (c *Canvas) Image(r ui.Rect, img image.Image) {
	if img == nil {
		return
	}
	tex := c.texture(img)
	b := tex.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.W/float64(b.Dx()), r.H/float64(b.Dy()))
	op.GeoM.Translate(r.X, r.Y)
	c.Screen.DrawImage(tex, op)
}

func (c *Canvas) Text(x, y float64, s string) {
	ebitenutil.DebugPrintAt(c.Screen, s, int(x), int(y))
}

func (c *Canvas) texture(img image.Image) *ebiten.Image {
	if e, ok := img.(*ebiten.Image); ok {
		return e
	}
	if tex, ok := c.textures[img]; ok {
		return tex
	}
	tex := ebiten.NewImageFromImage(img)
	c.textures[img] = tex
	return tex
}
