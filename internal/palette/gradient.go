package palette

import "image"

// Gradient renders the picker's hue×lightness surface at full saturation.
// Column i carries lightness 1-i/h and row j carries hue j/h, so a square
// image spans both ranges. Generate it once and reuse it.
func Gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	if h <= 0 {
		return img
	}
	ratio := 1 / float64(h)
	for j := 0; j < h; j++ {
		hue := float64(j) * ratio
		for i := 0; i < w; i++ {
			lightness := 1 - float64(i)*ratio
			img.SetNRGBA(i, j, HSL(hue, 1, lightness, 1).NRGBA())
		}
	}
	return img
}
