// Command life-frames runs the simulation without a window and writes one PNG
// per generation.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"

	"github.com/gogpu/gg"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"lattice-life/internal/core"
	"lattice-life/internal/render"
	"lattice-life/internal/seed"
	_ "lattice-life/internal/sims/life"
	"lattice-life/pkg/lattice"
)

type options struct {
	sim         string
	seed        string
	width       int
	height      int
	generations int
	out         string
	workers     int

	// queued, when set, is called after each frame is handed to an encoder.
	queued func(gen int)
}

func main() {
	var opts options
	flag.StringVar(&opts.sim, "sim", "life", "simulation to run")
	flag.StringVar(&opts.seed, "seed", "", "seed pattern YAML file (default: Gosper glider gun)")
	flag.IntVar(&opts.width, "width", 600, "frame width in pixels")
	flag.IntVar(&opts.height, "height", 400, "frame height in pixels")
	flag.IntVar(&opts.generations, "generations", 100, "generations to simulate")
	flag.StringVar(&opts.out, "out", "frames", "output directory")
	flag.IntVar(&opts.workers, "workers", runtime.NumCPU(), "parallel PNG encoders")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	gg.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, logger, opts); err != nil {
		logger.Error("life-frames failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, opts options) error {
	if opts.generations < 0 {
		return errors.Errorf("generations must not be negative, got %d", opts.generations)
	}
	factory, ok := core.Lookup(opts.sim)
	if !ok {
		return errors.Errorf("unknown sim %q (available: %v)", opts.sim, core.Names())
	}
	start, err := seed.LoadOrDefault(opts.seed)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(opts.out, 0o755); err != nil {
		return errors.Wrapf(err, "create %s", opts.out)
	}

	sim := factory(start)
	snap := render.NewSnapshot(opts.width, opts.height)
	logger.Info("rendering", "sim", sim.Name(), "cells", start.Len(), "generations", opts.generations, "out", opts.out)

	eg, gctx := errgroup.WithContext(ctx)
	if opts.workers > 0 {
		eg.SetLimit(opts.workers)
	}
	for gen := 0; gen <= opts.generations; gen++ {
		if gctx.Err() != nil {
			break
		}
		g, path := sim.Lattice(), framePath(opts.out, gen)
		eg.Go(func() error {
			return writeFrame(snap, path, g)
		})
		logger.Debug("frame queued", "generation", gen, "population", g.Len())
		if opts.queued != nil {
			opts.queued(gen)
		}
		if gen < opts.generations {
			sim.Step()
		}
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return errors.Wrap(context.Cause(ctx), "interrupted")
	}
	logger.Info("done", "generation", sim.Generation(), "population", sim.Lattice().Len())
	return nil
}

func framePath(dir string, gen int) string {
	return filepath.Join(dir, fmt.Sprintf("frame-%05d.png", gen))
}

func writeFrame(snap *render.Snapshot, path string, g lattice.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if err := snap.EncodePNG(f, g); err != nil {
		f.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	return errors.Wrapf(f.Close(), "close %s", path)
}
