package web_test

import (
	"image/color"

	"github.com/iburimskiy/particle-web/internal/web"
)

type opKind int

const (
	opClear opKind = iota
	opLine
	opCircle
)

type drawOp struct {
	kind           opKind
	x1, y1, x2, y2 float64
	width          float64
	r              float64
	clr            color.Color
	glow           web.Glow
}

// recordingSurface keeps every draw call in order.
type recordingSurface struct {
	ops []drawOp
}

func (s *recordingSurface) Clear() {
	s.ops = append(s.ops, drawOp{kind: opClear})
}

func (s *recordingSurface) StrokeLine(x1, y1, x2, y2, width float64, clr color.Color) {
	s.ops = append(s.ops, drawOp{kind: opLine, x1: x1, y1: y1, x2: x2, y2: y2, width: width, clr: clr})
}

func (s *recordingSurface) FillCircle(cx, cy, r float64, clr color.Color, glow web.Glow) {
	s.ops = append(s.ops, drawOp{kind: opCircle, x1: cx, y1: cy, r: r, clr: clr, glow: glow})
}

func (s *recordingSurface) count(kind opKind) int {
	n := 0
	for _, op := range s.ops {
		if op.kind == kind {
			n++
		}
	}
	return n
}

func (s *recordingSurface) reset() {
	s.ops = s.ops[:0]
}

// manualScheduler holds the last requested callback until the test fires it.
type manualScheduler struct {
	requests int
	pending  web.FrameCallback
}

func (s *manualScheduler) RequestFrame(cb web.FrameCallback) web.FrameHandle {
	s.requests++
	s.pending = cb
	return web.FrameHandle(s.requests)
}

func (s *manualScheduler) fire(timestamp float64) {
	cb := s.pending
	s.pending = nil
	cb(timestamp)
}

type fakeEvents struct {
	move   []func(x, y float64)
	resize []func(width, height int)
}

func (e *fakeEvents) OnPointerMove(fn func(x, y float64)) { e.move = append(e.move, fn) }
func (e *fakeEvents) OnResize(fn func(width, height int)) { e.resize = append(e.resize, fn) }

func (e *fakeEvents) emitMove(x, y float64) {
	for _, fn := range e.move {
		fn(x, y)
	}
}

func (e *fakeEvents) emitResize(width, height int) {
	for _, fn := range e.resize {
		fn(width, height)
	}
}
