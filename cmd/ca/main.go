//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"city-ca/internal/app"
	"city-ca/internal/core"
	_ "city-ca/internal/sims/city"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	sim, err := factory(cfg.SimOptions())
	if err != nil {
		log.Fatalf("create %s: %v", cfg.Sim, err)
	}

	game := app.New(sim, cfg)
	size := sim.Size()
	log.Printf("grid %dx%d seed=%d radius=%d", size.W, size.H, cfg.Seed, cfg.Radius)

	ebiten.SetWindowTitle("city-ca — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(game.Layout(0, 0))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
