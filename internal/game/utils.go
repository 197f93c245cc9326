package game

import (
	"fmt"
	"image/color"
	"time"
)

// fade returns c with its alpha scaled by a, which must be within 0-1.
func fade(c color.Color, a float64) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A)*a + 0.5)
	return n
}

// glowAlpha is the opacity of halo ring i out of steps, fading towards the
// outermost ring.
func glowAlpha(i, steps int) float64 {
	return 0.35 * (1 - float64(i-1)/float64(steps))
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
