package coral

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// ErrInvalidConfig reports out-of-range or malformed construction parameters.
var ErrInvalidConfig = errors.New("invalid coral config")

// Walk selects how a drifter moves each tick.
type Walk string

const (
	// WalkDiagonal draws a vertical and a horizontal unit step independently
	// every tick.
	WalkDiagonal Walk = "diagonal"
	// WalkOrthogonal moves either vertically or horizontally each tick. At
	// down_bias 1 particles fall straight down.
	WalkOrthogonal Walk = "orthogonal"
)

// Edges selects what happens at the left and right grid boundaries.
type Edges string

const (
	EdgesWrap    Edges = "wrap"
	EdgesReflect Edges = "reflect"
	EdgesClamp   Edges = "clamp"
)

// Neighborhood selects which cells count as touching a candidate position.
type Neighborhood string

const (
	NeighborhoodMoore      Neighborhood = "moore"
	NeighborhoodVonNeumann Neighborhood = "von-neumann"
)

// Config controls a coral growth run.
type Config struct {
	Rows int   `toml:"rows"`
	Cols int   `toml:"cols"`
	Seed int64 `toml:"seed"`

	// HueDiff is the maximum hue change between a parent cell and a child.
	HueDiff int `toml:"hue_diff"`
	// PBrightness is the average brightness gained along a root-to-top path,
	// as a fraction of full brightness. Values above 1 are allowed. It is not
	// a per-step probability: each child gains p_brightness*100/rows on average.
	PBrightness float64 `toml:"p_brightness"`
	DownBias    float64 `toml:"down_bias"`
	RightBias   float64 `toml:"right_bias"`

	Saturation     int  `toml:"saturation"`
	SeedBrightness int  `toml:"seed_brightness"`
	NonBlueSeeds   bool `toml:"non_blue_seeds"`

	Walk         Walk         `toml:"walk"`
	Edges        Edges        `toml:"edges"`
	Neighborhood Neighborhood `toml:"neighborhood"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Rows:         250,
		Cols:         600,
		Seed:         1337,
		HueDiff:      2,
		PBrightness:  0.8,
		DownBias:     0.3,
		RightBias:    0,
		Saturation:   100,
		Walk:         WalkDiagonal,
		Edges:        EdgesWrap,
		Neighborhood: NeighborhoodMoore,
	}
}

// Validate checks every field against its documented domain.
func (c Config) Validate() error {
	switch {
	case c.Rows <= 0:
		return errors.Wrapf(ErrInvalidConfig, "rows must be > 0, got %d", c.Rows)
	case c.Cols <= 0:
		return errors.Wrapf(ErrInvalidConfig, "cols must be > 0, got %d", c.Cols)
	case c.HueDiff < 0:
		return errors.Wrapf(ErrInvalidConfig, "hue_diff must be >= 0, got %d", c.HueDiff)
	case math.IsNaN(c.PBrightness) || math.IsInf(c.PBrightness, 0) || c.PBrightness < 0:
		return errors.Wrapf(ErrInvalidConfig, "p_brightness must be a finite value >= 0, got %v", c.PBrightness)
	case math.IsNaN(c.DownBias) || c.DownBias < 0 || c.DownBias > 1:
		return errors.Wrapf(ErrInvalidConfig, "down_bias must be in [0,1], got %v", c.DownBias)
	case math.IsNaN(c.RightBias) || c.RightBias < -1 || c.RightBias > 1:
		return errors.Wrapf(ErrInvalidConfig, "right_bias must be in [-1,1], got %v", c.RightBias)
	case c.Saturation < 0 || c.Saturation > MaxSaturation:
		return errors.Wrapf(ErrInvalidConfig, "saturation must be in [0,%d], got %d", MaxSaturation, c.Saturation)
	case c.SeedBrightness < 0:
		return errors.Wrapf(ErrInvalidConfig, "seed_brightness must be >= 0, got %d", c.SeedBrightness)
	}
	switch c.Walk {
	case WalkDiagonal, WalkOrthogonal:
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown walk %q", c.Walk)
	}
	switch c.Edges {
	case EdgesWrap, EdgesReflect, EdgesClamp:
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown edges %q", c.Edges)
	}
	switch c.Neighborhood {
	case NeighborhoodMoore, NeighborhoodVonNeumann:
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown neighborhood %q", c.Neighborhood)
	}
	return nil
}

// FromMap populates a Config from flag-style key/value pairs on top of the
// defaults.
func FromMap(cfg map[string]string) (Config, error) {
	return DefaultConfig().With(cfg)
}

// With returns a copy of c with the provided key/value overrides applied. Keys
// use the snake_case names of the TOML tags; hyphens are accepted in their
// place. Unknown keys and unparsable values are reported as ErrInvalidConfig.
func (c Config) With(cfg map[string]string) (Config, error) {
	keys := make([]string, 0, len(cfg))
	for k := range cfg {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		v := strings.TrimSpace(cfg[key])
		var err error
		switch strings.ReplaceAll(key, "-", "_") {
		case "rows", "h":
			c.Rows, err = strconv.Atoi(v)
		case "cols", "w":
			c.Cols, err = strconv.Atoi(v)
		case "seed":
			c.Seed, err = strconv.ParseInt(v, 10, 64)
		case "hue_diff":
			c.HueDiff, err = strconv.Atoi(v)
		case "p_brightness":
			c.PBrightness, err = strconv.ParseFloat(v, 64)
		case "down_bias":
			c.DownBias, err = strconv.ParseFloat(v, 64)
		case "right_bias":
			c.RightBias, err = strconv.ParseFloat(v, 64)
		case "saturation":
			c.Saturation, err = strconv.Atoi(v)
		case "seed_brightness":
			c.SeedBrightness, err = strconv.Atoi(v)
		case "non_blue_seeds":
			c.NonBlueSeeds, err = strconv.ParseBool(v)
		case "walk":
			c.Walk = Walk(v)
		case "edges":
			c.Edges = Edges(v)
		case "neighborhood":
			c.Neighborhood = Neighborhood(v)
		default:
			return c, errors.Wrapf(ErrInvalidConfig, "unknown key %q", key)
		}
		if err != nil {
			return c, errors.Wrapf(ErrInvalidConfig, "%s=%q: %v", key, v, err)
		}
	}
	return c, nil
}

// Map renders every field as the key/value pairs With accepts, so that
// DefaultConfig().With(c.Map()) reproduces c.
func (c Config) Map() map[string]string {
	return map[string]string{
		"rows":            strconv.Itoa(c.Rows),
		"cols":            strconv.Itoa(c.Cols),
		"seed":            strconv.FormatInt(c.Seed, 10),
		"hue_diff":        strconv.Itoa(c.HueDiff),
		"p_brightness":    strconv.FormatFloat(c.PBrightness, 'g', -1, 64),
		"down_bias":       strconv.FormatFloat(c.DownBias, 'g', -1, 64),
		"right_bias":      strconv.FormatFloat(c.RightBias, 'g', -1, 64),
		"saturation":      strconv.Itoa(c.Saturation),
		"seed_brightness": strconv.Itoa(c.SeedBrightness),
		"non_blue_seeds":  strconv.FormatBool(c.NonBlueSeeds),
		"walk":            string(c.Walk),
		"edges":           string(c.Edges),
		"neighborhood":    string(c.Neighborhood),
	}
}

// LoadConfig decodes a TOML run file on top of base. Keys the file sets that
// Config does not know about are rejected.
func LoadConfig(path string, base Config) (Config, error) {
	cfg := base
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return base, errors.Wrapf(ErrInvalidConfig, "decode %s: %v", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return base, errors.Wrapf(ErrInvalidConfig, "%s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}
