package web

import (
	"image/color"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"
)

// randomColor picks a fully saturated color of random hue, hsl(h, 100%, 50%).
func randomColor() colorful.Color {
	return colorful.Hsl(rand.Float64()*360, 1, 0.5).Clamped()
}

// lineColor returns white at the given opacity.
func lineColor(opacity float64) color.NRGBA {
	return color.NRGBA{R: 255, G: 255, B: 255, A: uint8(clamp01(opacity)*255 + 0.5)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
