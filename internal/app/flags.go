package app

import (
	"flag"
	"strings"

	"github.com/pkg/errors"

	"mad-coral/internal/core"
	"mad-coral/internal/sims/coral"
	"mad-coral/internal/sims/gallery"
)

// overrideKeys are the growth parameters that can be set individually on the
// command line. They take precedence over the preset and the config file.
var overrideKeys = []struct{ name, usage string }{
	{"rows", "grid height in cells"},
	{"cols", "grid width in cells"},
	{"hue-diff", "maximum hue change between parent and child"},
	{"p-brightness", "average brightness gain from root to top"},
	{"down-bias", "downward drift bias in [0,1]"},
	{"right-bias", "rightward drift bias in [-1,1]"},
	{"saturation", "saturation of every coral cell"},
	{"seed-brightness", "brightness of freshly seeded corals"},
	{"non-blue-seeds", "keep seed hues away from the background blue"},
	{"walk", "drifter walk: diagonal or orthogonal"},
	{"edges", "horizontal boundary: wrap, reflect or clamp"},
	{"neighborhood", "attachment neighbourhood: moore or von-neumann"},
}

// Config represents the command-line parameters shared by the coral binaries.
type Config struct {
	Sim          string
	ConfigPath   string
	Scale        int
	TPS          int
	Seed         int64
	ShowDrifters bool
	HUDWidth     int
	Speed        int

	fs        *flag.FlagSet
	overrides map[string]*string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "classic", Scale: 1, TPS: 60, HUDWidth: 220, Speed: 4}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	c.fs = fs
	fs.StringVar(&c.Sim, "sim", c.Sim, "preset to start from ("+strings.Join(core.Names(), ", ")+")")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "TOML file applied on top of the preset")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 keeps the configured seed)")
	fs.BoolVar(&c.ShowDrifters, "drifters", c.ShowDrifters, "draw drifting particles")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the parameter panel in pixels (0 hides it)")
	fs.IntVar(&c.Speed, "speed", c.Speed, "ticks simulated per frame")

	c.overrides = make(map[string]*string, len(overrideKeys))
	for _, k := range overrideKeys {
		c.overrides[k.name] = fs.String(k.name, "", k.usage)
	}
}

// Overrides returns the growth parameters explicitly set on the command line.
func (c *Config) Overrides() map[string]string {
	out := map[string]string{}
	if c.fs == nil {
		return out
	}
	c.fs.Visit(func(f *flag.Flag) {
		if v, ok := c.overrides[f.Name]; ok {
			out[f.Name] = *v
		}
	})
	return out
}

// Resolve builds the growth configuration: preset, then config file, then
// individual flags, then the seed flag.
func (c *Config) Resolve() (coral.Config, error) {
	if _, ok := core.Sims()[c.Sim]; !ok {
		return coral.Config{}, errors.Errorf("unknown sim %q", c.Sim)
	}
	preset, ok := gallery.Lookup(c.Sim)
	if !ok {
		return coral.Config{}, errors.Errorf("sim %q has no preset", c.Sim)
	}
	cfg, err := preset.Config(nil)
	if err != nil {
		return cfg, err
	}
	if c.ConfigPath != "" {
		if cfg, err = coral.LoadConfig(c.ConfigPath, cfg); err != nil {
			return cfg, err
		}
	}
	if cfg, err = cfg.With(c.Overrides()); err != nil {
		return cfg, err
	}
	if c.Seed != 0 {
		cfg.Seed = c.Seed
	}
	return cfg, cfg.Validate()
}

// NewSim resolves the configuration and builds the sim through the registry,
// handing the factory every resolved field.
func (c *Config) NewSim() (*gallery.Sim, error) {
	cfg, err := c.Resolve()
	if err != nil {
		return nil, err
	}
	sim, err := core.Sims()[c.Sim](cfg.Map())
	if err != nil {
		return nil, err
	}
	gs, ok := sim.(*gallery.Sim)
	if !ok {
		return nil, errors.Errorf("sim %q is not a coral sim", c.Sim)
	}
	return gs, nil
}
