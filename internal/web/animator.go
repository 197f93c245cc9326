package web

import (
	"time"

	"github.com/iburimskiy/particle-web/internal/config"
)

// AnimatorStats provides statistics about frame execution.
type AnimatorStats struct {
	Executed    int64
	Dropped     int64
	Points      int
	Lines       int
	AvgInterval time.Duration
}

// Animator drives the web one frame at a time, re-requesting itself from the
// scheduler on every invocation and skipping frames that arrive sooner than
// the configured rate allows.
type Animator struct {
	web       *Web
	surface   Surface
	scheduler Scheduler

	minInterval float64
	lastTime    float64
	ran         bool

	executed  int64
	dropped   int64
	lastLines int
	tap       *frameTap
}

// NewAnimator creates an animator capped at config.FPSLimit frames per second.
func NewAnimator(w *Web, surface Surface, scheduler Scheduler) *Animator {
	return &Animator{
		web:         w,
		surface:     surface,
		scheduler:   scheduler,
		minInterval: 1000.0 / config.FPSLimit,
		tap:         newFrameTap(config.StatsWindow),
	}
}

// Start requests the first frame. The loop sustains itself from then on.
func (a *Animator) Start() {
	a.scheduler.RequestFrame(a.Frame)
}

// Frame runs one invocation of the loop at the given timestamp in
// milliseconds and schedules the next one.
func (a *Animator) Frame(timestamp float64) {
	a.scheduler.RequestFrame(a.Frame)
	a.step(timestamp)
}

// step draws a frame unless it arrives too soon after the previous one. It
// reports whether any work was done.
func (a *Animator) step(timestamp float64) bool {
	if a.ran && timestamp-a.lastTime < a.minInterval {
		a.dropped++
		return false
	}
	if a.ran {
		a.tap.record(time.Duration((timestamp - a.lastTime) * float64(time.Millisecond)))
	}
	a.ran = true
	a.lastTime = timestamp

	a.render()
	a.executed++
	return true
}

// render draws inactive points first, then the connections, then active
// points so glowing points are never covered.
func (a *Animator) render() {
	a.surface.Clear()
	a.web.Update()

	points := a.web.Points()
	for _, p := range points {
		if !p.Active {
			p.Draw(a.surface)
		}
	}

	lines := a.web.Connect()
	DrawLines(a.surface, lines)
	a.lastLines = len(lines)

	for _, p := range points {
		if p.Active {
			p.Draw(a.surface)
		}
	}
}

// Stats returns statistics about frame execution so far.
func (a *Animator) Stats() AnimatorStats {
	return AnimatorStats{
		Executed:    a.executed,
		Dropped:     a.dropped,
		Points:      len(a.web.Points()),
		Lines:       a.lastLines,
		AvgInterval: a.tap.average(),
	}
}
