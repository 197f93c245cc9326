package web

import (
	"math"

	"github.com/iburimskiy/particle-web/internal/config"
	"github.com/kamstrup/intmap"
)

// Line is a connection between two points recorded for the current frame.
type Line struct {
	A, B           int
	X1, Y1, X2, Y2 float64
	Opacity        float64
}

// pairKey is order independent: the smaller id always occupies the high bits.
func pairKey(a, b int) uint64 {
	if a > b {
		a, b = b, a
	}
	return uint64(uint32(a))<<32 | uint64(uint32(b))
}

// Connect finds every pair of points closer than threshold. Each point only
// inspects the 3x3 block of cells around it, so threshold must not exceed the
// index cell size. Every unordered pair is reported at most once and opacity
// fades linearly from 1 at distance 0 towards 0 at threshold.
func Connect(points []*Point, idx *SpatialIndex, threshold float64) []Line {
	var lines []Line
	connected := intmap.NewSet[uint64](len(points) * 2)

	for _, p := range points {
		for n := range idx.Neighborhood(p.cell) {
			if n == p {
				continue
			}
			k := pairKey(p.ID, n.ID)
			if connected.Has(k) {
				continue
			}

			d := math.Hypot(p.X-n.X, p.Y-n.Y)
			if d >= threshold {
				continue
			}

			lines = append(lines, Line{
				A:       p.ID,
				B:       n.ID,
				X1:      p.X,
				Y1:      p.Y,
				X2:      n.X,
				Y2:      n.Y,
				Opacity: 1 - d/threshold,
			})
			connected.Add(k)
		}
	}

	return lines
}

// DrawLines strokes every line in white at its own opacity.
func DrawLines(s Surface, lines []Line) {
	for _, l := range lines {
		s.StrokeLine(l.X1, l.Y1, l.X2, l.Y2, config.LineWidth, lineColor(l.Opacity))
	}
}
