package web

import (
	"math"

	"github.com/iburimskiy/particle-web/internal/config"
	"github.com/lucasb-eyer/go-colorful"
)

// Pointer is the last known pointer position. It stays unset until the first
// movement event arrives.
type Pointer struct {
	X, Y float64
	Set  bool
}

// DistanceTo returns the euclidean distance from the pointer to (x, y), or
// +Inf while the pointer is unset.
func (p Pointer) DistanceTo(x, y float64) float64 {
	if !p.Set {
		return math.Inf(1)
	}
	return math.Hypot(p.X-x, p.Y-y)
}

// Point is a single node of the web.
type Point struct {
	ID           int
	X, Y         float64
	BaseX, BaseY float64
	Color        colorful.Color
	Active       bool

	cell    Cell
	indexed bool
}

func newPoint(id int, x, y float64, c colorful.Color) *Point {
	return &Point{
		ID:    id,
		X:     x,
		Y:     y,
		BaseX: x,
		BaseY: y,
		Color: c,
	}
}

// Cell returns the cell the point was last assigned to.
func (p *Point) Cell() Cell {
	return p.cell
}

// Update reacts to the pointer and keeps the point's cell in idx current.
//
// While the pointer is within ActivationRadius the point is displaced by Ease
// times its offset to the pointer, with the sign applied as x -= dx*Ease where
// dx = pointer.X - x. Otherwise it eases back towards its rest position.
func (p *Point) Update(ptr Pointer, idx *SpatialIndex) {
	p.Active = ptr.DistanceTo(p.X, p.Y) < config.ActivationRadius

	if p.Active {
		dx := ptr.X - p.X
		dy := ptr.Y - p.Y
		p.X -= dx * config.Ease
		p.Y -= dy * config.Ease
	} else {
		p.X += (p.BaseX - p.X) * config.Ease
		p.Y += (p.BaseY - p.Y) * config.Ease
	}

	idx.Relocate(p)
}

// Draw renders the point as a filled circle, with a glow in its own color
// while active.
func (p *Point) Draw(s Surface) {
	var glow Glow
	if p.Active {
		glow = Glow{Blur: config.GlowBlur, Color: p.Color}
	}
	s.FillCircle(p.X, p.Y, config.PointRadius, p.Color, glow)
}
