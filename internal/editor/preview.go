package editor

import (
	"github.com/iburimskiy/particle-editor/internal/palette"
	"github.com/iburimskiy/particle-editor/internal/particles"
	"github.com/iburimskiy/particle-editor/internal/ui"
)

// Disc is one sample of a particle over its lifetime.
type Disc struct {
	X, Y, R float64
	Color   palette.Color
}

// Preview samples cfg at n evenly spaced points of normalised lifetime and
// lays them out left to right across the vertical centre of area.
func Preview(cfg particles.Config, area ui.Rect, n int) []Disc {
	if n < 2 || area.W <= 0 {
		return nil
	}
	discs := make([]Disc, n)
	step := area.W / float64(n)
	for i := range discs {
		t := float64(i) / float64(n-1)
		discs[i] = Disc{
			X:     area.X + step*(float64(i)+0.5),
			Y:     area.Y + area.H/2,
			R:     max(cfg.SizeAt(t), 0) / 2,
			Color: cfg.Colors.At(t),
		}
	}
	return discs
}
