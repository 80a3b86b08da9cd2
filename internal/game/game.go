// Package game runs the particle editor as an ebiten game.
package game

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/particle-editor/internal/config"
	"github.com/iburimskiy/particle-editor/internal/editor"
	"github.com/iburimskiy/particle-editor/internal/palette"
	"github.com/iburimskiy/particle-editor/internal/ui"
	"github.com/iburimskiy/particle-editor/internal/ui/ebitenui"
	"github.com/iburimskiy/particle-editor/internal/widget"
)

var (
	background = color.RGBA{R: 18, G: 20, B: 26, A: 255}
	axisColor  = color.RGBA{R: 60, G: 70, B: 90, A: 255}
)

// Game implements ebiten.Game.
type Game struct {
	cfg    config.Config
	logger *slog.Logger

	ctx    *ui.Context
	editor *editor.Editor
	canvas *ebitenui.Canvas

	prevKey       keyEdges
	width, height int
}

// New builds the editor for cfg.
func New(cfg config.Config, logger *slog.Logger) *Game {
	style := widget.CurveStyle{
		Width:     cfg.Curve.Width,
		Height:    cfg.Curve.Height,
		Min:       cfg.Curve.Min,
		Max:       cfg.Curve.Max,
		Threshold: cfg.Curve.Threshold,
	}
	gradient := palette.Gradient(config.GradientSize, config.GradientSize)

	ed := editor.New(style, gradient, logger)
	ed.Save = saveDialog

	return &Game{
		cfg:     cfg,
		logger:  logger,
		ctx:     ui.NewContext(ui.NewStore()),
		editor:  ed,
		canvas:  ebitenui.NewCanvas(),
		prevKey: keyEdges{},
		width:   cfg.Window.Width,
		height:  cfg.Window.Height,
	}
}

func (g *Game) Update() error {
	in := ebitenui.PollInput()
	if g.prevKey.justPressed(in, ui.KeyQ) {
		return ebiten.Termination
	}

	g.ctx.Begin(in, panelRect(g.width, g.height))
	g.editor.Build(g.ctx)
	g.ctx.End()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.drawPreview(screen)

	g.canvas.Screen = screen
	g.ctx.Replay(g.canvas)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.logger.Debug("window resized", "width", outsideWidth, "height", outsideHeight)
	}
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func (g *Game) drawPreview(screen *ebiten.Image) {
	area := previewArea(g.width, g.height)
	if area.W <= 0 {
		return
	}
	cy := float32(area.Y + area.H/2)
	vector.StrokeLine(screen, float32(area.X), cy, float32(area.X+area.W), cy, 1, axisColor, false)

	cfg := g.editor.Config
	for _, d := range editor.Preview(cfg, area, g.cfg.Preview.Samples) {
		vector.DrawFilledCircle(screen, float32(d.X), float32(d.Y), float32(d.R), d.Color, true)
	}

	status := "lifetime 0 -> 1"
	if !cfg.Emitting {
		status += " (not emitting)"
	}
	ebitenutil.DebugPrintAt(screen, status, int(area.X), int(area.Y+area.H/2+40))
	ebitenutil.DebugPrintAt(screen, "Q: quit", int(area.X), 12)
}

// saveDialog asks for a destination and writes doc there. Cancelling the
// dialog is not an error.
func saveDialog(doc []byte) error {
	path, err := zenity.SelectFileSave(
		zenity.Title("Save Emitter Config"),
		zenity.Filename("emitter.toml"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "TOML",
			Patterns: []string{"*.toml"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return fmt.Errorf("select config file: %w", err)
	}
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
