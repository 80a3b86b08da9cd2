package game

import (
	"github.com/iburimskiy/particle-editor/internal/config"
	"github.com/iburimskiy/particle-editor/internal/ui"
)

// keyEdges turns held keys into just-pressed events.
type keyEdges map[ui.Key]bool

func (k keyEdges) justPressed(in ui.Input, key ui.Key) bool {
	pressed := in.KeyDown(key)
	jp := pressed && !k[key]
	k[key] = pressed
	return jp
}

// panelRect is the config panel for a w×h window.
func panelRect(w, h int) ui.Rect {
	return ui.Rect{
		X: config.PanelX,
		Y: config.PanelY,
		W: config.PanelWidth,
		H: float64(h) - 2*config.PanelY,
	}
}

// previewArea is the part of a w×h window right of the panel.
func previewArea(w, h int) ui.Rect {
	x := float64(config.PanelX + config.PanelWidth + 20)
	return ui.Rect{X: x, Y: 0, W: max(float64(w)-x-20, 0), H: float64(h)}
}
