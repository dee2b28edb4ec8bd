package coral

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFromMapOverridesDefaults(t *testing.T) {
	cfg, err := FromMap(map[string]string{
		"rows":           "40",
		"w":              "80",
		"hue-diff":       "0",
		"p_brightness":   "1.5",
		"down_bias":      "0.9",
		"right_bias":     "-0.25",
		"non_blue_seeds": "true",
		"walk":           "orthogonal",
		"edges":          "reflect",
		"neighborhood":   "von-neumann",
		"seed":           "12",
	})
	if err != nil {
		t.Fatalf("FromMap: %v", err)
	}
	if cfg.Rows != 40 || cfg.Cols != 80 || cfg.HueDiff != 0 || cfg.PBrightness != 1.5 {
		t.Fatalf("unexpected dimensions or color params: %+v", cfg)
	}
	if cfg.DownBias != 0.9 || cfg.RightBias != -0.25 || !cfg.NonBlueSeeds || cfg.Seed != 12 {
		t.Fatalf("unexpected bias params: %+v", cfg)
	}
	if cfg.Walk != WalkOrthogonal || cfg.Edges != EdgesReflect || cfg.Neighborhood != NeighborhoodVonNeumann {
		t.Fatalf("unexpected policies: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	def, err := FromMap(nil)
	if err != nil || def != DefaultConfig() {
		t.Fatalf("nil map must yield defaults, got %+v (%v)", def, err)
	}
}

func TestFromMapRejectsBadInput(t *testing.T) {
	for _, m := range []map[string]string{
		{"rows": "many"},
		{"down_bias": "steep"},
		{"colour": "red"},
	} {
		if _, err := FromMap(m); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("%v: expected ErrInvalidConfig, got %v", m, err)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seaweed.toml")
	body := "rows = 120\ncols = 300\nhue_diff = 1\np_brightness = 1.0\ndown_bias = 0.1\nright_bias = -0.05\nwalk = \"orthogonal\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path, DefaultConfig())
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Rows != 120 || cfg.Cols != 300 || cfg.HueDiff != 1 || cfg.DownBias != 0.1 || cfg.RightBias != -0.05 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Walk != WalkOrthogonal || cfg.Saturation != DefaultConfig().Saturation {
		t.Fatalf("unset keys must keep base values: %+v", cfg)
	}

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("rows = 10\nzoom = 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(bad, DefaultConfig()); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("unknown keys must be rejected, got %v", err)
	}
	if _, err := LoadConfig(filepath.Join(dir, "missing.toml"), DefaultConfig()); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("missing file must be reported, got %v", err)
	}
}

func TestMapReproducesConfig(t *testing.T) {
	want := DefaultConfig()
	want.Rows, want.Cols, want.Seed = 17, 23, -9
	want.PBrightness, want.DownBias, want.RightBias = 0.37, 0.15, -0.05
	want.SeedBrightness, want.NonBlueSeeds = 4, true
	want.Walk, want.Edges, want.Neighborhood = WalkOrthogonal, EdgesReflect, NeighborhoodVonNeumann

	got, err := FromMap(want.Map())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}
