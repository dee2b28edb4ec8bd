package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"mad-coral/internal/app"
	"mad-coral/internal/render"
	"mad-coral/internal/sims/coral"
)

type options struct {
	printStep  int
	imageStep  int
	savePrefix string
	framesDir  string
	output     string
	ascii      bool
	timeout    time.Duration
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	opts := options{output: "coral.png", savePrefix: "step-"}
	flag.IntVar(&opts.printStep, "print-step", 1000, "log progress every n ticks (0 disables)")
	flag.IntVar(&opts.imageStep, "image-step", 0, "save an intermediate image every n ticks (0 disables)")
	flag.StringVar(&opts.savePrefix, "save-prefix", opts.savePrefix, "path prefix of intermediate images")
	flag.StringVar(&opts.framesDir, "frames-dir", "", "save one animation frame per tick into this directory")
	flag.StringVar(&opts.output, "o", opts.output, "final image path (empty skips it)")
	flag.BoolVar(&opts.ascii, "ascii", false, "print the final grid as text")
	flag.DurationVar(&opts.timeout, "timeout", 0, "stop after this long and keep the partial result (0 disables)")
	flag.Parse()
	if flag.NArg() > 0 {
		opts.output = flag.Arg(0)
	}

	grow, err := cfg.Resolve()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	if err := run(ctx, grow, cfg, opts); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, grow coral.Config, cfg *app.Config, opts options) error {
	eng, err := coral.New(grow)
	if err != nil {
		return err
	}
	log.Printf("growing %s: %dx%d seed=%d down=%.2f right=%.2f hue_diff=%d p_brightness=%.2f",
		cfg.Sim, grow.Rows, grow.Cols, grow.Seed, grow.DownBias, grow.RightBias, grow.HueDiff, grow.PBrightness)

	var monitors []coral.Monitor
	if opts.printStep > 0 {
		monitors = append(monitors, coral.Monitor{Every: opts.printStep, OnTick: func(tick int, snap *coral.Snapshot) error {
			log.Printf("step %d: %d corals", tick, snap.Corals)
			return nil
		}})
	}
	if opts.imageStep > 0 {
		monitors = append(monitors, coral.Monitor{Every: opts.imageStep, ShowDrifters: true, OnTick: func(tick int, snap *coral.Snapshot) error {
			return render.SavePNG(render.FramePath(opts.savePrefix, tick/opts.imageStep), render.Image(snap), cfg.Scale)
		}})
	}
	if opts.framesDir != "" {
		monitors = append(monitors, coral.Monitor{Every: 1, ShowDrifters: true, OnTick: func(tick int, snap *coral.Snapshot) error {
			return render.SavePNG(render.AnimationFramePath(opts.framesDir, tick), render.Image(snap), cfg.Scale)
		}})
	}

	start := time.Now()
	status, err := eng.Run(ctx, monitors...)
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		log.Printf("stopped at tick %d: %v", eng.Tick(), err)
	case err != nil:
		return err
	}
	log.Printf("%s after %d ticks (%s): %d corals from %d seeds",
		status, eng.Tick(), time.Since(start).Round(time.Millisecond), eng.CoralCount(), eng.Seeds())

	snap := eng.Snapshot(cfg.ShowDrifters)
	if opts.ascii {
		fmt.Println(render.ASCII(snap))
	}
	if opts.output != "" {
		if err := render.SavePNG(opts.output, render.Image(snap), cfg.Scale); err != nil {
			return err
		}
		log.Printf("wrote %s", opts.output)
	}
	return nil
}
