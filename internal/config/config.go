// Package config loads rangekit settings from an HCL file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/rangekit/notation"
)

// DefaultPath is the configuration file read when none is given.
const DefaultPath = "rangekit.hcl"

// Environment variables that override the file.
const (
	// EnvFormat selects the output notation format
	EnvFormat = "RANGEKIT_FORMAT"

	// EnvSeed seeds the sampler (0 means time seeded)
	EnvSeed = "RANGEKIT_SEED"

	// EnvLogLevel sets the log level
	EnvLogLevel = "RANGEKIT_LOG_LEVEL"
)

// Config is the complete rangekit configuration.
type Config struct {
	Output OutputSettings
	Sample SampleSettings
}

// OutputSettings controls how ranges are rendered.
type OutputSettings struct {
	Format    string `hcl:"format,optional"`
	Precision *int   `hcl:"precision,optional"`
	LogLevel  string `hcl:"log_level,optional"`
}

// SampleSettings controls the sampler.
type SampleSettings struct {
	Seed           int64 `hcl:"seed,optional"`
	RefreshSeconds int   `hcl:"refresh_seconds,optional"`
}

// file mirrors Config with optional blocks so either may be omitted.
type file struct {
	Output *OutputSettings `hcl:"output,block"`
	Sample *SampleSettings `hcl:"sample,block"`
}

// Default returns the built-in configuration.
func Default() *Config {
	precision := 2
	return &Config{
		Output: OutputSettings{
			Format:    notation.FormatGTOPlus,
			Precision: &precision,
			LogLevel:  "info",
		},
		Sample: SampleSettings{
			RefreshSeconds: 15,
		},
	}
}

// Load reads filename, fills defaults for anything unset and applies the
// environment overrides. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(filename); err == nil {
		parser := hclparse.NewParser()
		f, diags := parser.ParseHCLFile(filename)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
		}

		var raw file
		diags = gohcl.DecodeBody(f.Body, nil, &raw)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
		}
		cfg.merge(raw)
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) merge(raw file) {
	if o := raw.Output; o != nil {
		if o.Format != "" {
			c.Output.Format = o.Format
		}
		if o.Precision != nil {
			c.Output.Precision = o.Precision
		}
		if o.LogLevel != "" {
			c.Output.LogLevel = o.LogLevel
		}
	}
	if s := raw.Sample; s != nil {
		c.Sample.Seed = s.Seed
		if s.RefreshSeconds != 0 {
			c.Sample.RefreshSeconds = s.RefreshSeconds
		}
	}
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvFormat); v != "" {
		c.Output.Format = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Output.LogLevel = v
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s value: %w", EnvSeed, err)
		}
		c.Sample.Seed = seed
	}
	return nil
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if _, err := notation.LookupFormat(c.Output.Format); err != nil {
		return err
	}
	if c.PrecisionDigits() < 0 {
		return fmt.Errorf("precision must not be negative: %d", c.PrecisionDigits())
	}
	switch c.Output.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Output.LogLevel)
	}
	if c.Sample.RefreshSeconds <= 0 {
		return fmt.Errorf("refresh_seconds must be positive: %d", c.Sample.RefreshSeconds)
	}
	return nil
}

// PrecisionDigits returns the number of decimals percentages are rounded to.
func (c *Config) PrecisionDigits() int {
	if c.Output.Precision == nil {
		return 2
	}
	return *c.Output.Precision
}

// RefreshInterval returns the sample refresh period.
func (c *Config) RefreshInterval() time.Duration {
	return time.Duration(c.Sample.RefreshSeconds) * time.Second
}
