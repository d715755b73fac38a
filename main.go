package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-pingpong/config"
)

func main() {
	settings := config.DefaultSettings()

	game, err := NewGame(settings)
	if err != nil {
		log.Fatalf("Failed to start %s: %v", config.WindowTitle, err)
	}

	ebiten.SetWindowSize(game.Layout(0, 0))
	ebiten.SetWindowTitle(config.WindowTitle)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
