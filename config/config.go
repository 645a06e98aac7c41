// SPDX-License-Identifier: MIT

// Package config holds the run configuration for the strokenet CLI.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/strokenet/classifier"
)

// DefaultIterations is the training length used by the game.
const DefaultIterations = 30

// Config captures the knobs for a training or prediction run.
type Config struct {
	DataFile   string  `yaml:"data_file"`
	LabelFile  string  `yaml:"label_file"`
	Theta1File string  `yaml:"theta1_file"`
	Theta2File string  `yaml:"theta2_file"`
	Iterations int     `yaml:"iterations"`
	HiddenSize int     `yaml:"hidden_size"`
	Alpha      float64 `yaml:"alpha"`
	Lambda     float64 `yaml:"lambda"`
	Seed       int64   `yaml:"seed"`
	LogLevel   string  `yaml:"log_level"`
	Workers    int     `yaml:"workers"`
}

// Overrides captures CLI supplied values; zero values are ignored.
type Overrides struct {
	DataFile   string
	LabelFile  string
	Theta1File string
	Theta2File string
	Iterations int
	HiddenSize int
	Alpha      float64
	Lambda     float64
	Seed       int64
	LogLevel   string
	Workers    int
}

// Default returns the configuration the game ships with.
func Default() *Config {
	return &Config{
		DataFile:   "dataOXO.txt",
		LabelFile:  "labelsOXO.txt",
		Iterations: DefaultIterations,
		HiddenSize: classifier.DefaultHiddenSize,
		Alpha:      classifier.DefaultAlpha,
		Lambda:     classifier.DefaultLambda,
		Seed:       classifier.DefaultSeed,
		LogLevel:   "info",
	}
}

// Load reads a YAML file on top of Default and validates the result.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML from r on top of Default and validates the result.
// Unknown keys are an error. An empty document yields the defaults.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyOverrides updates c using any non-zero override.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.DataFile != "" {
		c.DataFile = o.DataFile
	}
	if o.LabelFile != "" {
		c.LabelFile = o.LabelFile
	}
	if o.Theta1File != "" {
		c.Theta1File = o.Theta1File
	}
	if o.Theta2File != "" {
		c.Theta2File = o.Theta2File
	}
	if o.Iterations > 0 {
		c.Iterations = o.Iterations
	}
	if o.HiddenSize > 0 {
		c.HiddenSize = o.HiddenSize
	}
	if o.Alpha > 0 {
		c.Alpha = o.Alpha
	}
	if o.Lambda > 0 {
		c.Lambda = o.Lambda
	}
	if o.Seed != 0 {
		c.Seed = o.Seed
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
	if o.Workers > 0 {
		c.Workers = o.Workers
	}
}

// Validate verifies the config is runnable.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Iterations < 0 {
		return fmt.Errorf("iterations must be ≥ 0 (got %d)", c.Iterations)
	}
	if c.HiddenSize <= 0 {
		return fmt.Errorf("hidden_size must be > 0 (got %d)", c.HiddenSize)
	}
	if !(c.Alpha > 0) || math.IsInf(c.Alpha, 0) {
		return fmt.Errorf("alpha must be > 0 (got %v)", c.Alpha)
	}
	if !(c.Lambda >= 0) || math.IsInf(c.Lambda, 0) {
		return fmt.Errorf("lambda must be ≥ 0 (got %v)", c.Lambda)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be ≥ 0 (got %d)", c.Workers)
	}
	if (c.Theta1File == "") != (c.Theta2File == "") {
		return errors.New("theta1_file and theta2_file must be set together")
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}

	return nil
}

// SlogLevel parses LogLevel (debug, info, warn, error).
func (c *Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("log_level %q: %w", c.LogLevel, err)
	}

	return lvl, nil
}

// ClassifierOptions turns the training knobs into classifier options.
func (c *Config) ClassifierOptions() []classifier.Option {
	return []classifier.Option{
		classifier.WithHiddenSize(c.HiddenSize),
		classifier.WithAlpha(c.Alpha),
		classifier.WithLambda(c.Lambda),
		classifier.WithSeed(c.Seed),
	}
}
