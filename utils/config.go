package utils

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Driver names accepted in Config.Driver
const (
	DriverHeadless = "headless"
	DriverTerminal = "terminal"
	DriverWindow   = "window"
)

// ErrInvalidConfig marks a configuration that cannot start a simulation
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for a simulation run
type Config struct {
	Width               int           `json:"width"`
	Height              int           `json:"height"`
	FrameRate           time.Duration `json:"frame_rate"`
	StartPaused         bool          `json:"start_paused"`
	CellSize            int           `json:"cell_size"`
	RandomDensity       float64       `json:"random_density"`
	SeedPatterns        bool          `json:"seed_patterns"`
	Seed                int64         `json:"seed"`
	MaxGenerations      int           `json:"max_generations"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	Driver              string        `json:"driver"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               50,
		Height:              50,
		FrameRate:           time.Second / 12,
		StartPaused:         true,
		CellSize:            12, // 600x600 window
		RandomDensity:       0,
		SeedPatterns:        false,
		Seed:                42,
		MaxGenerations:      0,
		StagnationThreshold: 5,
		Driver:              DriverTerminal,
	}
}

// LoadConfig loads configuration from JSON file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Bind attaches the configuration to the provided FlagSet so flags override file values
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid columns")
	fs.IntVar(&c.Height, "height", c.Height, "grid rows")
	fs.DurationVar(&c.FrameRate, "frame-rate", c.FrameRate, "time between generations while running")
	fs.BoolVar(&c.StartPaused, "paused", c.StartPaused, "start paused for editing")
	fs.IntVar(&c.CellSize, "cell-size", c.CellSize, "pixels per cell in the window driver")
	fs.Float64Var(&c.RandomDensity, "density", c.RandomDensity, "fraction of cells seeded alive")
	fs.BoolVar(&c.SeedPatterns, "patterns", c.SeedPatterns, "seed a glider, blinker and block")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random life")
	fs.IntVar(&c.MaxGenerations, "generations", c.MaxGenerations, "stop after this many generations (0 runs until interrupted)")
	fs.IntVar(&c.StagnationThreshold, "stagnation", c.StagnationThreshold, "stagnant generations before a headless run stops (0 disables)")
	fs.StringVar(&c.Driver, "driver", c.Driver, "headless, terminal or window")
}

// Validate reports the first setting that cannot start a simulation
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] grid must be positive, got %dx%d", c.Width, c.Height)
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative frame rate: %v", c.FrameRate)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] random density outside [0,1]: %v", c.RandomDensity)
	case c.CellSize <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] cell size must be positive, got %d", c.CellSize)
	case c.MaxGenerations < 0 || c.StagnationThreshold < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative limits: generations %d, stagnation %d",
			c.MaxGenerations, c.StagnationThreshold)
	}

	switch c.Driver {
	case DriverHeadless, DriverTerminal, DriverWindow:
		return nil
	default:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] unknown driver: %q", c.Driver)
	}
}

// ShouldSeed reports whether the world starts from seeded life instead of empty
func (c Config) ShouldSeed() bool {
	return c.RandomDensity > 0 || c.SeedPatterns
}
