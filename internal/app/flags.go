package app

import (
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"lattice-life/internal/core"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim      string        `yaml:"sim"`
	Seed     string        `yaml:"seed"`
	Width    int           `yaml:"width"`
	Height   int           `yaml:"height"`
	Interval time.Duration `yaml:"interval"`
	TPS      int           `yaml:"tps"`

	// File is an optional YAML file read before flags are applied.
	File string `yaml:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "life", Width: 600, Height: 400, Interval: core.DefaultInterval, TPS: 60}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.File, "config", c.File, "optional YAML config file")
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.StringVar(&c.Seed, "seed", c.Seed, "seed pattern YAML file (default: Gosper glider gun)")
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "pause between generations")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
}

// Resolve merges the config file, if any, underneath the flags explicitly set
// on fs and validates the result.
func (c *Config) Resolve(fs *flag.FlagSet) error {
	if c.File != "" {
		file, err := LoadConfig(c.File)
		if err != nil {
			return err
		}
		set := map[string]bool{}
		fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
		if !set["sim"] {
			c.Sim = file.Sim
		}
		if !set["seed"] {
			c.Seed = file.Seed
		}
		if !set["width"] {
			c.Width = file.Width
		}
		if !set["height"] {
			c.Height = file.Height
		}
		if !set["interval"] {
			c.Interval = file.Interval
		}
		if !set["tps"] {
			c.TPS = file.TPS
		}
	}
	return c.Validate()
}

// Validate rejects settings the driving loop cannot run with.
func (c *Config) Validate() error {
	if c.Sim == "" {
		return errors.New("config: sim must be set")
	}
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("config: window must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Interval <= 0 {
		return errors.Errorf("config: interval must be positive, got %s", c.Interval)
	}
	if c.TPS <= 0 {
		return errors.Errorf("config: tps must be positive, got %d", c.TPS)
	}
	return nil
}

// LoadConfig reads a YAML config file. Keys missing from the file keep their
// defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := NewConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "[LoadConfig] failed to read file: %s", path)
	}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return cfg, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %s", path)
	}
	return cfg, nil
}
