// Package config loads the YAML configuration of a training run.
package config

import (
	"bytes"
	"io"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/Motwg/RandomForest/dataio"
	"github.com/Motwg/RandomForest/ensemble"
	"github.com/Motwg/RandomForest/pkg/errors"
	"github.com/Motwg/RandomForest/pkg/log"
	"github.com/Motwg/RandomForest/tree"
)

// Config is the complete configuration of a run.
type Config struct {
	Data   DataConfig   `yaml:"data"`
	Forest ForestConfig `yaml:"forest"`
	Log    LogConfig    `yaml:"log"`
	Render RenderConfig `yaml:"render"`
}

// DataConfig names the input tables and the output sink.
type DataConfig struct {
	Movies  string `yaml:"movies"`
	Train   string `yaml:"train"`
	Task    string `yaml:"task"`
	Output  string `yaml:"output"`
	Charset string `yaml:"charset"`
}

// ForestConfig holds the hyperparameters of every per-user forest.
type ForestConfig struct {
	Trees     int     `yaml:"trees"`
	K         int     `yaml:"k"`
	KDiv      float64 `yaml:"k_div"`
	MaxDepth  int     `yaml:"max_depth"`
	EntropyTh float64 `yaml:"entropy_th"`
	IGTh      float64 `yaml:"ig_th"`
	Validate  int     `yaml:"validate"`
	Seed      *uint64 `yaml:"seed,omitempty"`
	Jobs      int     `yaml:"jobs"`
}

// LogConfig configures pkg/log.
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Console    bool   `yaml:"console"`
}

// RenderConfig names optional image outputs. Empty paths disable them.
type RenderConfig struct {
	TreePNG  string `yaml:"tree_png"`
	StatsPNG string `yaml:"stats_png"`
}

// Default returns the configuration of the reference run.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Movies: "movies.csv",
			Train:  "train.csv",
			Task:   "task.csv",
			Output: "submission.csv",
		},
		Forest: ForestConfig{
			Trees:     ensemble.DefaultTrees,
			K:         ensemble.DefaultK,
			KDiv:      ensemble.DefaultKDiv,
			MaxDepth:  ensemble.DefaultMaxDepth,
			EntropyTh: ensemble.DefaultEntropyThreshold,
			IGTh:      ensemble.DefaultInfoGainThreshold,
			Validate:  ensemble.DefaultValidate,
			Jobs:      1,
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  100,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Load reads the file at path over the defaults. An empty path returns the
// defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening config %s", path)
	}
	defer file.Close()

	cfg, err := Decode(file)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Decode reads YAML from r over the defaults and validates the result.
// Unknown keys are rejected.
func Decode(r io.Reader) (*Config, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading config")
	}
	cfg := Default()
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := yaml.UnmarshalStrict(raw, cfg); err != nil {
			return nil, errors.Wrap(err, "decoding config")
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field that has a restricted range.
func (c *Config) Validate() error {
	if c.Forest.Trees < 1 {
		return errors.NewValidationError("forest.trees", "must be at least 1", c.Forest.Trees)
	}
	if err := errors.CheckNonNegative("forest.validate", c.Forest.Validate); err != nil {
		return err
	}
	if err := c.TreeParams().Validate(); err != nil {
		return err
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	for name, path := range map[string]string{
		"data.movies": c.Data.Movies,
		"data.train":  c.Data.Train,
		"data.task":   c.Data.Task,
		"data.output": c.Data.Output,
	} {
		if path == "" {
			return errors.NewValidationError(name, "must not be empty", path)
		}
	}
	return nil
}

// TreeParams returns the growth parameters of Forest.
func (c *Config) TreeParams() tree.Params {
	return tree.Params{
		K:                 c.Forest.K,
		KDiv:              c.Forest.KDiv,
		MaxDepth:          c.Forest.MaxDepth,
		EntropyThreshold:  c.Forest.EntropyTh,
		InfoGainThreshold: c.Forest.IGTh,
	}
}

// ForestOptions translates Forest into ensemble options.
func (c *Config) ForestOptions() []ensemble.Option {
	opts := []ensemble.Option{
		ensemble.WithTrees(c.Forest.Trees),
		ensemble.WithParams(c.TreeParams()),
		ensemble.WithValidate(c.Forest.Validate),
		ensemble.WithNJobs(c.Forest.Jobs),
	}
	if c.Forest.Seed != nil {
		opts = append(opts, ensemble.WithRandomState(*c.Forest.Seed))
	}
	return opts
}

// LogOptions translates Log into pkg/log options.
func (c *Config) LogOptions() log.Options {
	return log.Options{
		Level:      c.Log.Level,
		File:       c.Log.File,
		MaxSizeMB:  c.Log.MaxSizeMB,
		MaxBackups: c.Log.MaxBackups,
		MaxAgeDays: c.Log.MaxAgeDays,
		Console:    c.Log.Console,
	}
}

// Files returns the input tables of Data.
func (c *Config) Files() dataio.Files {
	return dataio.Files{
		Movies:  c.Data.Movies,
		Train:   c.Data.Train,
		Task:    c.Data.Task,
		Charset: c.Data.Charset,
	}
}
