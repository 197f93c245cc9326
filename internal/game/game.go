// Package game binds the particle web to an ebiten window.
package game

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/particle-web/internal/web"
)

// Game implements ebiten.Game. Pointer polling happens in Update, resize
// detection in Layout, and the web's frame callback runs from Draw.
type Game struct {
	web    *web.Web
	anim   *web.Animator
	canvas *canvas
	sched  *frameScheduler
	input  *inputSource
	start  time.Time
}

// NewGame creates a game for an initial width x height window.
func NewGame(width, height int) *Game {
	g := &Game{
		canvas: newCanvas(width, height),
		sched:  &frameScheduler{},
		input:  newInputSource(width, height),
		start:  time.Now(),
	}

	g.web = web.New(width, height)
	g.web.Attach(g.input)
	g.input.OnResize(g.onResize)

	g.anim = web.NewAnimator(g.web, g.canvas, g.sched)
	g.anim.Start()

	log.Printf("web: %dx%d, %d points", width, height, len(g.web.Points()))
	return g
}

func (g *Game) onResize(width, height int) {
	g.canvas.resize(width, height)
	log.Printf("web: resized to %dx%d: %d points, uptime %s",
		width, height, len(g.web.Points()), formatDuration(time.Since(g.start)))
}

func (g *Game) Update() error {
	x, y := ebiten.CursorPosition()
	g.input.pointer(x, y)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.sched.fire(g.elapsed())
	screen.DrawImage(g.canvas.img, nil)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.input.resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// elapsed returns milliseconds since the game was created.
func (g *Game) elapsed() float64 {
	return float64(time.Since(g.start)) / float64(time.Millisecond)
}

// Stats returns the animator's frame statistics.
func (g *Game) Stats() web.AnimatorStats {
	return g.anim.Stats()
}

// LogStats writes a one-line frame summary.
func (g *Game) LogStats() {
	s := g.Stats()
	log.Printf("web: %d frames drawn, %d dropped, avg interval %s, %d points, %d lines, uptime %s",
		s.Executed, s.Dropped, s.AvgInterval.Round(time.Microsecond), s.Points, s.Lines,
		formatDuration(time.Since(g.start)))
}
