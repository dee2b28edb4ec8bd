package main

import (
	"context"
	"flag"
	"log"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"mad-coral/internal/render"
	"mad-coral/internal/sims/coral"
	"mad-coral/internal/sims/gallery"
)

func main() {
	dir := flag.String("dir", "examples", "output directory")
	jobs := flag.Int("jobs", runtime.NumCPU(), "examples generated in parallel")
	seed := flag.Int64("seed", 0, "random seed (0 keeps each preset's seed)")
	printTicks := flag.Int("print-ticks", 20000, "ticks before the with/without drifters pair is captured")
	animation := flag.Bool("animation", false, "also write one frame per tick of a 200x800 run")
	flag.Parse()

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(max(*jobs, 1))

	for _, p := range gallery.Presets() {
		if p.Name == "classic" {
			continue
		}
		g.Go(func() error {
			cfg, err := p.Config(nil)
			if err != nil {
				return err
			}
			if *seed != 0 {
				cfg.Seed = *seed
			}
			path := filepath.Join(*dir, p.Name+".png")
			if err := grow(ctx, cfg, path); err != nil {
				return err
			}
			log.Print(path)
			return nil
		})
	}

	g.Go(func() error {
		return printExamples(ctx, *dir, *seed, *printTicks)
	})

	if *animation {
		g.Go(func() error {
			return animationExample(ctx, filepath.Join(*dir, "frames"), *seed)
		})
	}

	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
}

func grow(ctx context.Context, cfg coral.Config, path string) error {
	eng, err := coral.New(cfg)
	if err != nil {
		return err
	}
	if _, err := eng.Run(ctx); err != nil {
		return err
	}
	return render.SavePNG(path, render.Image(eng.Snapshot(false)), 1)
}

// printExamples captures the same unfinished grid with and without drifters.
func printExamples(ctx context.Context, dir string, seed int64, ticks int) error {
	cfg := coral.DefaultConfig()
	cfg.Rows, cfg.Cols = 200, 400
	if seed != 0 {
		cfg.Seed = seed
	}
	eng, err := coral.New(cfg)
	if err != nil {
		return err
	}
	for i := 0; i < ticks; i++ {
		if i%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if _, err := eng.Step(); err != nil {
			return err
		}
	}
	for _, shot := range []struct {
		name     string
		drifters bool
	}{
		{"without_drifters.png", false},
		{"with_drifters.png", true},
	} {
		path := filepath.Join(dir, shot.name)
		if err := render.SavePNG(path, render.Image(eng.Snapshot(shot.drifters)), 1); err != nil {
			return err
		}
		log.Print(path)
	}
	return nil
}

func animationExample(ctx context.Context, dir string, seed int64) error {
	cfg := coral.DefaultConfig()
	cfg.Rows, cfg.Cols = 200, 800
	if seed != 0 {
		cfg.Seed = seed
	}
	eng, err := coral.New(cfg)
	if err != nil {
		return err
	}
	log.Print(dir)
	_, err = eng.Run(ctx, coral.Monitor{Every: 1, ShowDrifters: true, OnTick: func(tick int, snap *coral.Snapshot) error {
		return render.SavePNG(render.AnimationFramePath(dir, tick), render.Image(snap), 1)
	}})
	return err
}
