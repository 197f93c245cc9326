package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/particle-web/internal/config"
	"github.com/iburimskiy/particle-web/internal/game"
)

func main() {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := game.NewGame(config.WindowWidth, config.WindowHeight)
	err := ebiten.RunGame(g)
	g.LogStats()
	if err != nil {
		log.Fatal(err)
	}
}
