// Package config loads benchkit settings from an optional TOML file and
// BENCHKIT_* environment variables.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"

	"benchkit/internal/chart"
	"benchkit/internal/fixture"
	"benchkit/internal/logger"
)

// EnvPrefix prefixes every environment override, e.g. BENCHKIT_CLOSURE_NUM_EDGES.
const EnvPrefix = "benchkit"

// ConfigFileEnv names the variable holding the TOML config path.
const ConfigFileEnv = "BENCHKIT_CONFIG"

type Config struct {
	// Directory receiving closure.db and rsg.db.
	FixtureDir string                  `toml:"fixture_dir" envconfig:"FIXTURE_DIR"`
	Closure    fixture.ClosureConfig   `toml:"closure" envconfig:"CLOSURE"`
	Hierarchy  fixture.HierarchyConfig `toml:"hierarchy" envconfig:"HIERARCHY"`
	Chart      ChartConfig             `toml:"chart" envconfig:"CHART"`
	Log        logger.Config           `toml:"log" envconfig:"LOG"`

	// Run the step menu instead of every step in sequence.
	Interactive bool `toml:"interactive" envconfig:"INTERACTIVE"`
}

// SeriesConfig is one named line of chart data.
type SeriesConfig struct {
	Name   string    `toml:"name"`
	Values []float64 `toml:"values"`
}

// ChartConfig holds output settings and an optional data override for the
// benchmark chart. Data is only read from TOML.
type ChartConfig struct {
	OutputDir string `toml:"output_dir" envconfig:"OUTPUT_DIR"`
	FileName  string `toml:"file_name" envconfig:"FILE_NAME"`
	HTML      bool   `toml:"html" envconfig:"HTML"`
	Preview   bool   `toml:"preview" envconfig:"PREVIEW"`

	X           []float64    `toml:"x" ignored:"true"`
	SeriesA     SeriesConfig `toml:"series_a" ignored:"true"`
	SeriesB     SeriesConfig `toml:"series_b" ignored:"true"`
	Annotations []string     `toml:"annotations" ignored:"true"`
}

// DefaultChartConfig writes benchmark.png to the working directory.
func DefaultChartConfig() ChartConfig {
	return ChartConfig{
		OutputDir: ".",
		FileName:  "benchmark.png",
	}
}

// Benchmark returns the stock benchmark with any configured data applied.
// Series names are kept unless the override sets them.
func (c ChartConfig) Benchmark() chart.Benchmark {
	b := chart.DefaultBenchmark()
	if len(c.X) == 0 {
		return b
	}
	b.X = c.X
	b.A.Values = c.SeriesA.Values
	b.B.Values = c.SeriesB.Values
	b.Annotations = c.Annotations
	if c.SeriesA.Name != "" {
		b.A.Name = c.SeriesA.Name
	}
	if c.SeriesB.Name != "" {
		b.B.Name = c.SeriesB.Name
	}
	return b
}

// Validate checks output settings and the resulting chart data.
func (c ChartConfig) Validate() error {
	if c.FileName == "" {
		return &ConfigError{Field: "Chart.FileName", Message: "must not be empty"}
	}
	if err := c.Benchmark().Validate(); err != nil {
		return fmt.Errorf("chart data: %w", err)
	}
	return nil
}

// Default returns the stock configuration: fixtures and chart in the working
// directory, info-level console logging.
func Default() Config {
	return Config{
		FixtureDir: ".",
		Closure:    fixture.DefaultClosureConfig(),
		Hierarchy:  fixture.DefaultHierarchyConfig(),
		Chart:      DefaultChartConfig(),
		Log:        logger.DefaultConfig(),
	}
}

// Load starts from Default, decodes the TOML file at path when one is given,
// then applies environment overrides and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("could not decode TOML config %q: %w", path, err)
		}
	}
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return cfg, fmt.Errorf("could not apply environment overrides: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks every section of the configuration.
func (c Config) Validate() error {
	if c.FixtureDir == "" {
		return &ConfigError{Field: "FixtureDir", Message: "must not be empty"}
	}
	if err := c.Closure.Validate(); err != nil {
		return err
	}
	if err := c.Hierarchy.Validate(); err != nil {
		return err
	}
	return c.Chart.Validate()
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Field + " " + e.Message
}
