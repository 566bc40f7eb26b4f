package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Noise backends understood by the world generator.
const (
	NoiseOpenSimplex = "opensimplex"
	NoisePerlin      = "perlin"
)

// Config holds engine and driver settings.
type Config struct {
	// World generation
	Seed    int64  `yaml:"seed"`
	Noise   string `yaml:"noise"`
	Octaves []int  `yaml:"octaves"`

	// Streaming
	WindowRadius    int  `yaml:"window_radius"` // in chunks, window is (2r+1)^2
	Deadzone        int  `yaml:"deadzone"`      // in chunks, per axis
	Workers         int  `yaml:"workers"`       // extraction workers, 0 = NumCPU
	ReuseExtraction bool `yaml:"reuse_extraction"`

	// Headless driver
	FPSLimit int     `yaml:"fps_limit"` // 0 = unlimited
	Frames   int     `yaml:"frames"`
	Speed    float32 `yaml:"speed"`   // blocks per second
	Heading  float32 `yaml:"heading"` // degrees, 0 = +x
}

// Default returns the stock engine configuration.
func Default() Config {
	return Config{
		Seed:         0,
		Noise:        NoiseOpenSimplex,
		Octaves:      []int{1, 2, 4, 8, 16},
		WindowRadius: 8,
		Deadzone:     3,
		Workers:      0,
		FPSLimit:     60,
		Frames:       600,
		Speed:        20,
		Heading:      0,
	}
}

// Load reads a YAML file over the defaults. An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Noise = strings.ToLower(strings.TrimSpace(cfg.Noise))
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the engine cannot run with.
func (c Config) Validate() error {
	var errs []error
	switch c.Noise {
	case NoiseOpenSimplex, NoisePerlin:
	default:
		errs = append(errs, fmt.Errorf("unknown noise backend %q", c.Noise))
	}
	if len(c.Octaves) == 0 {
		errs = append(errs, errors.New("octaves must not be empty"))
	}
	hasUnit := false
	for _, n := range c.Octaves {
		if n <= 0 {
			errs = append(errs, fmt.Errorf("octave %d must be positive", n))
		}
		if n == 1 {
			hasUnit = true
		}
	}
	// the height normalizer sums 1/n with integer division; without n=1 it is zero
	if len(c.Octaves) > 0 && !hasUnit {
		errs = append(errs, errors.New("octaves must include 1"))
	}
	if c.WindowRadius <= 0 {
		errs = append(errs, fmt.Errorf("window_radius must be positive, got %d", c.WindowRadius))
	}
	if c.Deadzone < 0 {
		errs = append(errs, fmt.Errorf("deadzone must not be negative, got %d", c.Deadzone))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must not be negative, got %d", c.Workers))
	}
	if c.FPSLimit < 0 {
		errs = append(errs, fmt.Errorf("fps_limit must not be negative, got %d", c.FPSLimit))
	}
	if c.Frames < 0 {
		errs = append(errs, fmt.Errorf("frames must not be negative, got %d", c.Frames))
	}
	return errors.Join(errs...)
}

// Merge copies values loaded from a file into cfg for every setting that was
// not given explicitly on the command line. explicit holds flag names.
func Merge(cfg *Config, fromFile Config, explicit map[string]bool) {
	if !explicit["seed"] {
		cfg.Seed = fromFile.Seed
	}
	if !explicit["noise"] {
		cfg.Noise = fromFile.Noise
	}
	if !explicit["workers"] {
		cfg.Workers = fromFile.Workers
	}
	if !explicit["frames"] {
		cfg.Frames = fromFile.Frames
	}
	if !explicit["speed"] {
		cfg.Speed = fromFile.Speed
	}
	if !explicit["heading"] {
		cfg.Heading = fromFile.Heading
	}
	cfg.Octaves = fromFile.Octaves
	cfg.WindowRadius = fromFile.WindowRadius
	cfg.Deadzone = fromFile.Deadzone
	cfg.ReuseExtraction = fromFile.ReuseExtraction
	cfg.FPSLimit = fromFile.FPSLimit
}
