// Package config loads calc settings from .calc.yaml and CALC_*
// environment variables.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/unbound-force/calc/internal/taxonomy"
)

// DefaultFile is the config file looked up in the working directory
// when no explicit path is given.
const DefaultFile = ".calc.yaml"

// EnvPrefix is the prefix for environment overrides (CALC_FORMAT,
// CALC_MODE, CALC_PRECISION).
const EnvPrefix = "calc"

// Precision bounds. -1 selects the shortest exact representation.
const (
	MinPrecision = -1
	MaxPrecision = 20
)

// CalcConfig is the complete calc configuration.
type CalcConfig struct {
	// Mode is the numeric mode: "float" or "decimal".
	Mode taxonomy.Mode `yaml:"mode"`

	// Output controls result rendering.
	Output OutputConfig `yaml:"output"`
}

// OutputConfig controls result rendering.
type OutputConfig struct {
	// Format is "text" or "json".
	Format string `yaml:"format"`

	// Precision is the number of fractional digits in results,
	// or -1 for the shortest representation.
	Precision int `yaml:"precision"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *CalcConfig {
	return &CalcConfig{
		Mode: taxonomy.ModeFloat,
		Output: OutputConfig{
			Format:    "text",
			Precision: -1,
		},
	}
}

// Validate checks every field for a supported value.
func (c *CalcConfig) Validate() error {
	if !c.Mode.Valid() {
		return fmt.Errorf("invalid mode %q: must be 'float' or 'decimal'", c.Mode)
	}
	if c.Output.Format != "text" && c.Output.Format != "json" {
		return fmt.Errorf("invalid format %q: must be 'text' or 'json'", c.Output.Format)
	}
	if c.Output.Precision < MinPrecision || c.Output.Precision > MaxPrecision {
		return fmt.Errorf("invalid precision %d: must be in [%d, %d]",
			c.Output.Precision, MinPrecision, MaxPrecision)
	}
	return nil
}

// Load reads configuration from path on top of DefaultConfig. An empty
// path looks for DefaultFile in the working directory and falls back to
// the defaults when it does not exist; an explicit path must exist.
func Load(path string) (*CalcConfig, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of DefaultConfig and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (*CalcConfig, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envOverrides mirrors the overridable fields. Pointer fields stay nil
// when the variable is unset.
type envOverrides struct {
	Format    *string `envconfig:"FORMAT"`
	Mode      *string `envconfig:"MODE"`
	Precision *int    `envconfig:"PRECISION"`
}

// ApplyEnv overlays CALC_* environment variables onto c and validates
// the result.
func ApplyEnv(c *CalcConfig) error {
	var env envOverrides
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return fmt.Errorf("reading environment: %w", err)
	}

	if env.Format != nil {
		c.Output.Format = *env.Format
	}
	if env.Mode != nil {
		c.Mode = taxonomy.Mode(*env.Mode)
	}
	if env.Precision != nil {
		c.Output.Precision = *env.Precision
	}

	if err := c.Validate(); err != nil {
		return fmt.Errorf("environment: %w", err)
	}
	return nil
}

// Marshal renders c as YAML.
func Marshal(c *CalcConfig) ([]byte, error) {
	return yaml.Marshal(c)
}
