package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"runtime"
	"sort"
	"sync"
	"time"

	"mad-coral/internal/render"
	"mad-coral/internal/sims/coral"
)

type paramSet struct {
	downBias  float64
	rightBias float64
	hueDiff   int
}

func (p paramSet) String() string {
	return fmt.Sprintf("down=%.2f right=%+.2f hue=%d", p.downBias, p.rightBias, p.hueDiff)
}

type scenarioResult struct {
	params   paramSet
	ticks    int
	corals   int
	seeds    int
	density  float64
	complete bool
	elapsed  time.Duration
	err      error
}

func main() {
	rows := flag.Int("rows", 80, "grid height per scenario")
	cols := flag.Int("cols", 160, "grid width per scenario")
	seed := flag.Int64("seed", 1337, "random seed shared by every scenario")
	maxTicks := flag.Int("max-ticks", 200000, "give up on a scenario after this many ticks")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	out := flag.String("out", "", "directory for one PNG per scenario (empty disables)")
	flag.Parse()

	base := coral.DefaultConfig()
	base.Rows, base.Cols, base.Seed = *rows, *cols, *seed

	downOptions := []float64{0.1, 0.3, 0.5, 0.7, 1.0}
	rightOptions := []float64{-0.5, 0, 0.5}
	hueOptions := []int{0, 2, 8}

	var sets []paramSet
	for _, down := range downOptions {
		for _, right := range rightOptions {
			for _, hue := range hueOptions {
				sets = append(sets, paramSet{downBias: down, rightBias: right, hueDiff: hue})
			}
		}
	}

	fmt.Printf("Sweeping %d parameter sets (%d workers, %dx%d grid)\n", len(sets), *workers, *rows, *cols)

	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(base, params, *maxTicks, *out)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		if res.err != nil {
			log.Printf("%s: %v", res.params, res.err)
			continue
		}
		if !res.complete {
			fmt.Printf("Did not reach the top within %d ticks: %s\n", res.ticks, res.params)
		}
		all = append(all, res)
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].density != all[j].density {
			return all[i].density > all[j].density
		}
		return all[i].ticks < all[j].ticks
	})
	elapsed := time.Since(start)

	fmt.Printf("\nResults by coral density (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i, res := range all {
		fmt.Printf("%2d) density=%.3f corals=%d seeds=%d ticks=%d complete=%t took=%s params=%s\n",
			i+1, res.density, res.corals, res.seeds, res.ticks, res.complete, res.elapsed.Round(time.Millisecond), res.params)
	}
}

func runScenario(base coral.Config, params paramSet, maxTicks int, outDir string) scenarioResult {
	cfg := base
	cfg.DownBias = params.downBias
	cfg.RightBias = params.rightBias
	cfg.HueDiff = params.hueDiff

	res := scenarioResult{params: params}
	eng, err := coral.New(cfg)
	if err != nil {
		res.err = err
		return res
	}

	start := time.Now()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	limit := coral.Monitor{Every: maxTicks, OnTick: func(int, *coral.Snapshot) error {
		cancel()
		return nil
	}}
	status, err := eng.Run(ctx, limit)
	if err != nil && ctx.Err() == nil {
		res.err = err
		return res
	}

	res.elapsed = time.Since(start)
	res.ticks = eng.Tick()
	res.corals = eng.CoralCount()
	res.seeds = eng.Seeds()
	res.density = float64(res.corals) / float64(cfg.Rows*cfg.Cols)
	res.complete = status == coral.Complete

	if outDir != "" {
		name := fmt.Sprintf("down%.2f_right%+.2f_hue%d.png", params.downBias, params.rightBias, params.hueDiff)
		if err := render.SavePNG(filepath.Join(outDir, name), render.Image(eng.Snapshot(false)), 2); err != nil {
			res.err = err
		}
	}
	return res
}
