//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/nagy135/convex-game-of-life/internal/app"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	e, err := app.OpenEngine(cfg)
	if err != nil {
		log.Fatalf("open engine: %v", err)
	}
	app.CheckIntervals(log.Default(), cfg.Poll, e.Config().ThrottleWindow)

	game, err := app.New(context.Background(), e, cfg)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("Game of Life")
	ebiten.SetWindowSize(cfg.ViewW*cfg.Scale, cfg.ViewH*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
