package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ============================================================================
// CONFIG — Optional YAML overrides for the report
// ============================================================================
// Default() reproduces the fixed behaviour: both CSVs in the working
// directory, charts written next to them at 300 DPI. A file given to Load
// only needs the keys it changes.
// ============================================================================

const (
	DefaultGraduatesFile   = "GRADUATES EMPLOYMENT STATUS_with_stem.csv"
	DefaultProspectiveFile = "PROSPECTIVE GRADUATES_with_stem.csv"
	DefaultDPI             = 300
)

// ErrInvalid is wrapped by Validate.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Inputs struct {
		Graduates   string `yaml:"graduates"`
		Prospective string `yaml:"prospective"`
	} `yaml:"inputs"`

	Output struct {
		Dir string `yaml:"dir"`
		DPI int    `yaml:"dpi"`
	} `yaml:"output"`

	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// Default returns the built-in configuration.
func Default() Config {
	var cfg Config
	cfg.Inputs.Graduates = DefaultGraduatesFile
	cfg.Inputs.Prospective = DefaultProspectiveFile
	cfg.Output.Dir = "."
	cfg.Output.DPI = DefaultDPI
	cfg.Log.Level = "info"
	return cfg
}

// Load reads path and overlays it on Default.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate rejects empty paths and a non-positive DPI.
func (c Config) Validate() error {
	switch {
	case c.Inputs.Graduates == "":
		return fmt.Errorf("%w: inputs.graduates is empty", ErrInvalid)
	case c.Inputs.Prospective == "":
		return fmt.Errorf("%w: inputs.prospective is empty", ErrInvalid)
	case c.Output.Dir == "":
		return fmt.Errorf("%w: output.dir is empty", ErrInvalid)
	case c.Output.DPI <= 0:
		return fmt.Errorf("%w: output.dpi must be positive, got %d", ErrInvalid, c.Output.DPI)
	}
	return nil
}
