// Package web implements the particle web: a grid of points that react to the
// pointer and are linked by fading lines when close enough.
package web

import (
	"github.com/iburimskiy/particle-web/internal/config"
)

// Web owns the point field, the spatial index over it and the pointer state.
// All methods must be called from the goroutine that drives the frames.
type Web struct {
	spacing float64

	points  []*Point
	index   *SpatialIndex
	pointer Pointer
}

// New builds a web covering a width x height viewport.
func New(width, height int) *Web {
	w := &Web{
		spacing: config.GridSpacing,
		index:   NewSpatialIndex(config.CellSize),
	}
	w.Resize(width, height)
	return w
}

// Resize discards every point and rebuilds the field for the new viewport.
func (w *Web) Resize(width, height int) {
	w.index.Clear()
	w.points = nil

	id := 0
	for y := 0.0; y <= float64(height); y += w.spacing {
		for x := 0.0; x <= float64(width); x += w.spacing {
			p := newPoint(id, x, y, randomColor())
			w.points = append(w.points, p)
			w.index.Insert(p)
			id++
		}
	}
}

// Attach subscribes the web to pointer and resize events from src.
func (w *Web) Attach(src EventSource) {
	src.OnPointerMove(w.PointerMove)
	src.OnResize(w.Resize)
}

// PointerMove records the latest pointer position.
func (w *Web) PointerMove(x, y float64) {
	w.pointer = Pointer{X: x, Y: y, Set: true}
}

// Update advances every point by one step.
func (w *Web) Update() {
	for _, p := range w.points {
		p.Update(w.pointer, w.index)
	}
}

// Connect returns the lines between every pair of points closer than the
// grid spacing.
func (w *Web) Connect() []Line {
	return Connect(w.points, w.index, w.spacing)
}

// Points returns the field in build order.
func (w *Web) Points() []*Point {
	return w.points
}

// Index returns the spatial index over the field.
func (w *Web) Index() *SpatialIndex {
	return w.index
}

// Pointer returns the last known pointer state.
func (w *Web) Pointer() Pointer {
	return w.pointer
}
