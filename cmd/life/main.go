//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"lattice-life/internal/app"
	"lattice-life/internal/core"
	"lattice-life/internal/seed"
	_ "lattice-life/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Resolve(flag.CommandLine); err != nil {
		log.Fatal(err)
	}

	factory, ok := core.Lookup(cfg.Sim)
	if !ok {
		log.Fatalf("unknown sim %q (available: %v)", cfg.Sim, core.Names())
	}

	start, err := seed.LoadOrDefault(cfg.Seed)
	if err != nil {
		log.Fatal(err)
	}
	sim := factory(start)
	log.Printf("%s: %d cells on a %dx%d lattice", sim.Name(), start.Len(), start.Dim.Width, start.Dim.Height)

	game := app.New(sim, cfg.Width, cfg.Height, cfg.Interval)

	ebiten.SetWindowTitle("The Game of Life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
