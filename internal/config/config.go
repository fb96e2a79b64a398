// Package config provides configuration loading for the tag detector.
// It handles loading configuration from YAML files and provides default values.
package config

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config represents the detector configuration loaded from YAML.
type Config struct {
	// Detection parameters for the quad search
	Detection struct {
		// MinEdgeLength is the minimum quad edge or diagonal length in pixels
		MinEdgeLength float64 `yaml:"minEdgeLength"`

		// MaxAspectRatio rejects quads whose longest edge exceeds the
		// shortest by more than this factor
		MaxAspectRatio float64 `yaml:"maxAspectRatio"`

		// NumWorkers is the number of goroutines sharding the search
		NumWorkers int `yaml:"numWorkers"`
	} `yaml:"detection"`

	// Tag geometry parameters
	Tag struct {
		// DimensionBits is the payload grid side length in cells
		DimensionBits int `yaml:"dimensionBits"`

		// BlackBorder is the width of the solid border ring in cells
		BlackBorder int `yaml:"blackBorder"`
	} `yaml:"tag"`

	// Preprocess parameters applied before decoding
	Preprocess struct {
		// BlurSigma is the Gaussian pre-blur standard deviation; 0 disables
		BlurSigma float64 `yaml:"blurSigma"`
	} `yaml:"preprocess"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Detection.MinEdgeLength = 6
	cfg.Detection.MaxAspectRatio = 32
	cfg.Detection.NumWorkers = runtime.NumCPU()

	cfg.Tag.DimensionBits = 6
	cfg.Tag.BlackBorder = 1

	cfg.Preprocess.BlurSigma = 0

	return cfg
}

// LoadConfig loads configuration from a YAML file, applying file values over
// the defaults. If the file doesn't exist, it returns the default
// configuration.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the detector cannot work with.
func (c *Config) Validate() error {
	if c.Tag.DimensionBits < 1 || c.Tag.DimensionBits > 8 {
		return fmt.Errorf("dimensionBits must be in [1, 8], got %d", c.Tag.DimensionBits)
	}
	if c.Tag.BlackBorder < 1 {
		return fmt.Errorf("blackBorder must be at least 1, got %d", c.Tag.BlackBorder)
	}
	if c.Detection.MinEdgeLength <= 0 {
		return fmt.Errorf("minEdgeLength must be positive, got %v", c.Detection.MinEdgeLength)
	}
	if c.Detection.MaxAspectRatio < 1 {
		return fmt.Errorf("maxAspectRatio must be at least 1, got %v", c.Detection.MaxAspectRatio)
	}
	if c.Preprocess.BlurSigma < 0 {
		return fmt.Errorf("blurSigma must not be negative, got %v", c.Preprocess.BlurSigma)
	}
	return nil
}
