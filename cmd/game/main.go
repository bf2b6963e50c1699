package main

import (
	"log"

	"github.com/Garsondee/Lane-Clash/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	ebiten.SetWindowTitle("Lane Clash")
	ebiten.SetWindowSize(1268, 448)
	if err := ebiten.RunGame(game.NewApp()); err != nil {
		log.Fatal(err)
	}
}
