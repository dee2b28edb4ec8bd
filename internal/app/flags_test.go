package app

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mad-coral/internal/core"
)

func parse(t *testing.T, args ...string) *Config {
	t.Helper()
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse: %v", err)
	}
	return cfg
}

func TestResolveDefaults(t *testing.T) {
	cfg, err := parse(t).Resolve()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Rows != 500 || cfg.Cols != 1200 || cfg.DownBias != 0.15 {
		t.Fatalf("unexpected classic config: %+v", cfg)
	}
}

func TestResolveLayering(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.toml")
	body := "rows = 30\ncols = 40\ndown_bias = 0.5\nhue_diff = 7\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	c := parse(t, "-sim", "dark", "-config", path, "-down-bias", "0.9", "-seed", "99")
	if got := c.Overrides(); len(got) != 1 || got["down-bias"] != "0.9" {
		t.Fatalf("unexpected overrides: %v", got)
	}
	cfg, err := c.Resolve()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Rows != 30 || cfg.Cols != 40 || cfg.HueDiff != 7 {
		t.Fatalf("config file not applied: %+v", cfg)
	}
	if cfg.PBrightness != 0.1 {
		t.Fatalf("preset value lost: %v", cfg.PBrightness)
	}
	if cfg.DownBias != 0.9 || cfg.Seed != 99 {
		t.Fatalf("flags should win: %+v", cfg)
	}
}

func TestResolveErrors(t *testing.T) {
	if _, err := parse(t, "-sim", "nope").Resolve(); err == nil {
		t.Fatalf("expected unknown sim to fail")
	}
	if _, err := parse(t, "-right-bias", "4").Resolve(); err == nil {
		t.Fatalf("expected out-of-range bias to fail")
	}
	if _, err := parse(t, "-config", filepath.Join(t.TempDir(), "missing.toml")).Resolve(); err == nil {
		t.Fatalf("expected missing config file to fail")
	}
}

func TestNewSim(t *testing.T) {
	sim, err := parse(t, "-sim", "uniform", "-rows", "8", "-cols", "9").NewSim()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sim.Name() != "uniform" || sim.Size().W != 9 || sim.Size().H != 8 {
		t.Fatalf("unexpected sim %s %+v", sim.Name(), sim.Size())
	}
}

func TestNewSimUsesRegistry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.toml")
	body := "walk = \"orthogonal\"\nneighborhood = \"von-neumann\"\np_brightness = 0.37\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	c := parse(t, "-sim", "seaweed", "-config", path, "-rows", "14", "-cols", "18", "-seed", "5")
	want, err := c.Resolve()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sim, err := c.NewSim()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := sim.Engine().Config(); got != want {
		t.Fatalf("registry sim config %+v, want %+v", got, want)
	}
	if sim.Name() != "seaweed" {
		t.Fatalf("got name %q", sim.Name())
	}

	fs := flag.NewFlagSet("usage", flag.ContinueOnError)
	NewConfig().Bind(fs)
	for _, name := range core.Names() {
		if !strings.Contains(fs.Lookup("sim").Usage, name) {
			t.Fatalf("-sim usage does not list %q", name)
		}
	}
}
