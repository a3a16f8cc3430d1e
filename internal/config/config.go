package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration
type Config struct {
	Packages []Package     `json:"packages"`
	Display  DisplayConfig `json:"display"`
	Log      LogConfig     `json:"log"`
}

// Package is one sensor reading: a kind code and its numeric fields
type Package struct {
	Kind   string    `json:"kind"`
	Fields []float64 `json:"fields"`
}

// DisplayConfig holds display preferences
type DisplayConfig struct {
	Interactive bool `json:"interactive"` // open the TUI instead of printing lines
	ChartHeight int  `json:"chart_height"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Debug bool `json:"debug"`
}

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

// ErrConfigExists is returned by CreateExample when the file is already there
var ErrConfigExists = errors.New("config file already exists")

// DefaultFileName is where -init writes when no -config path is given
const DefaultFileName = "workouts.json"

// SamplePackages returns the reference sensor batch
func SamplePackages() []Package {
	return []Package{
		{Kind: "SWM", Fields: []float64{720, 1, 80, 25, 40}},
		{Kind: "RUN", Fields: []float64{15000, 1, 75}},
		{Kind: "WLK", Fields: []float64{9000, 1, 75, 180}},
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Packages: SamplePackages(),
		Display: DisplayConfig{
			ChartHeight: 8,
		},
	}
}

// Load reads the configuration from path
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply defaults for missing values
	defaults := DefaultConfig()
	if cfg.Display.ChartHeight == 0 {
		cfg.Display.ChartHeight = defaults.Display.ChartHeight
	}

	return &cfg, nil
}

// Save writes the configuration to path
func Save(path string, cfg *Config) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CreateExample writes the sample batch to path. An existing file is never overwritten.
func CreateExample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrConfigExists, path)
	}

	example := DefaultConfig()
	return Save(path, &example)
}

// Validate checks if the config has required fields.
// Kind codes and field values are checked when each package is dispatched.
func (c *Config) Validate() error {
	if len(c.Packages) == 0 {
		return errors.New("packages must contain at least one workout")
	}

	for i, p := range c.Packages {
		if p.Kind == "" {
			return fmt.Errorf("packages[%d].kind is required", i)
		}
	}

	if c.Display.ChartHeight < 0 {
		return fmt.Errorf("display.chart_height must not be negative, got %d", c.Display.ChartHeight)
	}

	return nil
}
