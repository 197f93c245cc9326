package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/particle-web/internal/config"
	"github.com/iburimskiy/particle-web/internal/web"
)

// canvas is an offscreen image the web draws onto. Unlike the ebiten screen
// it keeps its contents between frames, so a dropped frame shows the previous
// one instead of a blank window.
type canvas struct {
	img *ebiten.Image
}

func newCanvas(width, height int) *canvas {
	c := &canvas{}
	c.resize(width, height)
	return c
}

func (c *canvas) resize(width, height int) {
	if c.img != nil {
		c.img.Deallocate()
	}
	c.img = ebiten.NewImage(max(width, 1), max(height, 1))
}

func (c *canvas) Clear() {
	c.img.Clear()
}

func (c *canvas) StrokeLine(x1, y1, x2, y2, width float64, clr color.Color) {
	vector.StrokeLine(c.img, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), clr, true)
}

func (c *canvas) FillCircle(cx, cy, r float64, clr color.Color, glow web.Glow) {
	if glow.Enabled() {
		// Approximate a shadow blur with translucent rings, outermost first.
		for i := config.GlowSteps; i >= 1; i-- {
			rr := r + glow.Blur*float64(i)/config.GlowSteps
			vector.DrawFilledCircle(c.img, float32(cx), float32(cy), float32(rr), fade(glow.Color, glowAlpha(i, config.GlowSteps)), true)
		}
	}
	vector.DrawFilledCircle(c.img, float32(cx), float32(cy), float32(r), clr, true)
}
