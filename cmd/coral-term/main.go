package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"

	"mad-coral/internal/app"
	"mad-coral/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Sim = "bright"
	cfg.TPS = 240
	cfg.Bind(flag.CommandLine)
	fps := flag.Int("fps", 30, "frames drawn per second")
	flag.Parse()

	sim, err := cfg.NewSim()
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	viewer := term.NewViewer(screen, sim, cfg.TPS, cfg.ShowDrifters)
	if err := viewer.Run(ctx, time.Second/time.Duration(max(*fps, 1))); err != nil {
		screen.Fini()
		log.Fatal(err)
	}
}
