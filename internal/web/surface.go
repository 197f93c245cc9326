package web

import "image/color"

// Surface is the 2D drawing target the web renders onto.
type Surface interface {
	Clear()
	StrokeLine(x1, y1, x2, y2, width float64, clr color.Color)
	FillCircle(cx, cy, r float64, clr color.Color, glow Glow)
}

// Glow describes a soft halo drawn behind a circle. A zero Blur means no glow.
type Glow struct {
	Blur  float64
	Color color.Color
}

// Enabled reports whether the glow should be drawn.
func (g Glow) Enabled() bool {
	return g.Blur > 0
}

// FrameCallback is invoked by a Scheduler with a monotonically increasing
// timestamp in milliseconds.
type FrameCallback func(timestamp float64)

// FrameHandle identifies a pending frame request.
type FrameHandle uint64

// Scheduler runs a callback once before the next paint.
type Scheduler interface {
	RequestFrame(cb FrameCallback) FrameHandle
}

// EventSource delivers pointer movement and viewport resize notifications.
type EventSource interface {
	OnPointerMove(fn func(x, y float64))
	OnResize(fn func(width, height int))
}
