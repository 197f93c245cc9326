package game

import (
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/iburimskiy/particle-web/internal/web"
)

func TestFrameScheduler(t *testing.T) {
	s := &frameScheduler{}
	assert.False(t, s.fire(0), "nothing pending")

	var got []float64
	var cb web.FrameCallback
	cb = func(ts float64) {
		got = append(got, ts)
		s.RequestFrame(cb)
	}

	h1 := s.RequestFrame(cb)
	assert.True(t, s.fire(5))
	assert.True(t, s.fire(21))
	assert.Equal(t, []float64{5, 21}, got)

	h2 := s.RequestFrame(cb)
	assert.Greater(t, h2, h1)
}

func TestFrameSchedulerDrivesAnimator(t *testing.T) {
	s := &frameScheduler{}
	w := web.New(150, 150)
	a := web.NewAnimator(w, nopSurface{}, s)
	a.Start()

	for ts := 0.0; ts < 100; ts += 5 {
		assert.True(t, s.fire(ts))
	}

	stats := a.Stats()
	assert.Equal(t, int64(20), stats.Executed+stats.Dropped)
	assert.Equal(t, int64(5), stats.Executed)
}

type nopSurface struct{}

func (nopSurface) Clear()                                                {}
func (nopSurface) StrokeLine(_, _, _, _, _ float64, _ color.Color)       {}
func (nopSurface) FillCircle(_, _, _ float64, _ color.Color, _ web.Glow) {}

func TestInputSourcePointer(t *testing.T) {
	s := newInputSource(100, 100)

	var moves [][2]float64
	s.OnPointerMove(func(x, y float64) {
		moves = append(moves, [2]float64{x, y})
	})

	s.pointer(0, 0)
	s.pointer(0, 0)
	assert.Empty(t, moves, "baseline sample is not a move")

	s.pointer(10, 20)
	s.pointer(10, 20)
	s.pointer(11, 20)
	assert.Equal(t, [][2]float64{{10, 20}, {11, 20}}, moves)
}

func TestInputSourceResize(t *testing.T) {
	s := newInputSource(100, 100)

	var sizes [][2]int
	s.OnResize(func(w, h int) { sizes = append(sizes, [2]int{w, h}) })
	s.OnResize(func(w, h int) { sizes = append(sizes, [2]int{-w, -h}) })

	s.resize(100, 100)
	assert.Empty(t, sizes)

	s.resize(200, 100)
	s.resize(200, 100)
	assert.Equal(t, [][2]int{{200, 100}, {-200, -100}}, sizes)
}

func TestInputSourceFeedsWeb(t *testing.T) {
	s := newInputSource(150, 150)
	w := web.New(150, 150)
	w.Attach(s)

	s.pointer(0, 0)
	s.pointer(30, 40)
	assert.Equal(t, web.Pointer{X: 30, Y: 40, Set: true}, w.Pointer())

	s.resize(300, 150)
	assert.Len(t, w.Points(), 15)
}

func TestFade(t *testing.T) {
	c := fade(color.NRGBA{R: 10, G: 20, B: 30, A: 255}, 0.5)
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 128}, c)
	assert.Equal(t, uint8(0), fade(color.White, 0).A)

	// Every ring alpha is already within range, so fade never needs clamping.
	for i := 1; i <= 5; i++ {
		a := glowAlpha(i, 5)
		assert.GreaterOrEqual(t, a, 0.0)
		assert.LessOrEqual(t, a, 1.0)
	}
}

func TestGlowAlpha(t *testing.T) {
	assert.InDelta(t, 0.35, glowAlpha(1, 5), 1e-9)
	assert.Less(t, glowAlpha(5, 5), glowAlpha(1, 5))
	assert.Greater(t, glowAlpha(5, 5), 0.0)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "00:00", formatDuration(0))
	assert.Equal(t, "01:05", formatDuration(65*time.Second))
	assert.Equal(t, "61:01", formatDuration(time.Hour+61*time.Second))
}
