//go:build ebiten

package app

import (
	"fmt"
	"log"
	"time"

	"mad-coral/internal/render"
	"mad-coral/internal/sims/gallery"
	"mad-coral/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a coral sim to the ebiten.Game interface.
type Game struct {
	sim     *gallery.Sim
	painter *GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	scale    int
	speed    int
	hudWidth int
	paused   bool
	tickOnce bool
	seed     int64
	shots    int
}

// New constructs a Game for the provided simulation.
func New(sim *gallery.Sim, cfg *Config) *Game {
	size := sim.Size()
	speed := cfg.Speed
	if speed <= 0 {
		speed = 1
	}
	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	return &Game{
		sim:      sim,
		painter:  NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(sim, cfg.ShowDrifters),
		hud:      ui.NewHUD(sim, cfg.HUDWidth),
		scale:    scale,
		speed:    speed,
		hudWidth: max(cfg.HUDWidth, 0),
		seed:     sim.Engine().Config().Seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.screenshot()
	}

	g.overlay.Update()
	g.hud.Update(g.sim.Size().W * g.scale)

	switch {
	case g.tickOnce:
		g.sim.Step()
		g.tickOnce = false
	case !g.paused:
		for i := 0; i < g.speed && !g.sim.Done(); i++ {
			g.sim.Step()
		}
	}
	return nil
}

func (g *Game) screenshot() {
	g.shots++
	path := render.FramePath(fmt.Sprintf("%s-", g.sim.Name()), g.shots)
	img := render.Image(g.sim.Engine().Snapshot(g.overlay.ShowDrifters()))
	if err := render.SavePNG(path, img, 1); err != nil {
		log.Printf("screenshot: %v", err)
		return
	}
	log.Printf("saved %s at tick %d", path, g.sim.Tick())
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim, g.overlay.ShowDrifters(), g.scale)
	g.overlay.Draw(screen, g.paused)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
