package game

import "github.com/iburimskiy/particle-web/internal/web"

// frameScheduler holds at most one pending frame callback and runs it when
// ebiten is about to paint.
type frameScheduler struct {
	pending web.FrameCallback
	next    web.FrameHandle
}

func (s *frameScheduler) RequestFrame(cb web.FrameCallback) web.FrameHandle {
	s.next++
	s.pending = cb
	return s.next
}

// fire runs the pending callback, if any. The callback may request the next
// frame while it runs.
func (s *frameScheduler) fire(timestamp float64) bool {
	cb := s.pending
	s.pending = nil
	if cb == nil {
		return false
	}
	cb(timestamp)
	return true
}
