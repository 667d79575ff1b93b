// Package config loads the YAML configuration shared by the console and
// graphical front ends.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds front end settings.
type Config struct {
	// DataDir holds the database. Empty selects the platform data directory.
	DataDir string `yaml:"data_dir"`
	// Storage enables persistent statistics and preferences.
	Storage bool `yaml:"storage"`
	// Glyphs is "unicode" or "ascii".
	Glyphs      string `yaml:"glyphs"`
	Coordinates bool   `yaml:"coordinates"`
	Flipped     bool   `yaml:"flipped"`
	// LogMoves logs every move outcome to stderr.
	LogMoves bool   `yaml:"log_moves"`
	Window   Window `yaml:"window"`
}

// Window holds graphical front end settings.
type Window struct {
	SquareSize int `yaml:"square_size"`
}

const (
	minSquareSize = 40
	maxSquareSize = 160
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Storage:     true,
		Glyphs:      "unicode",
		Coordinates: true,
		Window:      Window{SquareSize: 80},
	}
}

// Load reads the YAML file at path over the defaults. A missing file
// yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("'%s': %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("'%s': %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks field ranges.
func (c Config) Validate() error {
	switch c.Glyphs {
	case "unicode", "ascii":
	default:
		return fmt.Errorf("%w: glyphs must be unicode or ascii, got %q", ErrInvalidConfig, c.Glyphs)
	}
	if c.Window.SquareSize < minSquareSize || c.Window.SquareSize > maxSquareSize {
		return fmt.Errorf("%w: window.square_size must be in [%d, %d], got %d",
			ErrInvalidConfig, minSquareSize, maxSquareSize, c.Window.SquareSize)
	}
	return nil
}

// Save writes c to path as YAML.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
