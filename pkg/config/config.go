package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Render RenderConfig `yaml:"render" mapstructure:"render"`
}

// RenderConfig contains render-specific configuration. The rendering core
// assumes well-formed values; validation happens here, before anything is
// handed to it.
type RenderConfig struct {
	Scene           string  `yaml:"scene" mapstructure:"scene"`
	Width           int     `yaml:"width" mapstructure:"width"`
	AspectRatio     float64 `yaml:"aspect_ratio" mapstructure:"aspect_ratio"`
	SamplesPerPixel int     `yaml:"samples_per_pixel" mapstructure:"samples_per_pixel"`
	MaxDepth        int     `yaml:"max_depth" mapstructure:"max_depth"`
	Seed            int64   `yaml:"seed" mapstructure:"seed"`
	Workers         int     `yaml:"workers" mapstructure:"workers"`
	Output          string  `yaml:"output" mapstructure:"output"`
}

// DefaultConfig returns a default configuration matching the default scene
func DefaultConfig() *Config {
	return &Config{
		Render: RenderConfig{
			Scene:           "default",
			Width:           800,
			AspectRatio:     16.0 / 9.0,
			SamplesPerPixel: 250,
			MaxDepth:        10,
			Seed:            42,
			Workers:         0, // 0 = one worker per CPU
			Output:          "render.png",
		},
	}
}

// LoadConfig loads configuration from the given file, falling back to
// defaults for unset values. An empty path loads pure defaults.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return config, nil
}

// Height derives the image height from width and aspect ratio
func (rc RenderConfig) Height() int {
	height := int(float64(rc.Width) / rc.AspectRatio)
	if height < 1 {
		height = 1
	}
	return height
}

// Validate rejects malformed render configuration
func (c *Config) Validate() error {
	r := c.Render
	if r.Scene == "" {
		return fmt.Errorf("scene name must not be empty")
	}
	if r.Width <= 0 {
		return fmt.Errorf("width must be positive, got %d", r.Width)
	}
	if r.AspectRatio <= 0 {
		return fmt.Errorf("aspect ratio must be positive, got %f", r.AspectRatio)
	}
	if r.SamplesPerPixel <= 0 {
		return fmt.Errorf("samples per pixel must be positive, got %d", r.SamplesPerPixel)
	}
	if r.MaxDepth <= 0 {
		return fmt.Errorf("max depth must be positive, got %d", r.MaxDepth)
	}
	if r.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", r.Workers)
	}
	if r.Output == "" {
		return fmt.Errorf("output path must not be empty")
	}
	return nil
}
