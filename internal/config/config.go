// SPDX-License-Identifier: MIT

// Package config loads rdsim run configuration from YAML or TOML files,
// .env files and RDSIM_* environment variables, in that order of precedence
// (later sources win).
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rdsim/preference"
	"github.com/katalvlaran/rdsim/simulation"
)

// Sentinel errors for configuration.
var (
	// ErrInvalidConfig indicates a value outside its allowed range.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrUnsupportedFormat indicates a config file extension other than
	// .yaml, .yml or .toml.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")
)

// Config is the complete run configuration.
type Config struct {
	Graph      Graph      `json:"graph" yaml:"graph" toml:"graph"`
	Survey     Survey     `json:"survey" yaml:"survey" toml:"survey"`
	Preference Preference `json:"preference" yaml:"preference" toml:"preference"`
	Batch      Batch      `json:"batch" yaml:"batch" toml:"batch"`
	Server     Server     `json:"server" yaml:"server" toml:"server"`
	Store      Store      `json:"store" yaml:"store" toml:"store"`
}

// Graph configures the backbone. Kind selects the generator (see the
// Kind* constants); Attach applies to barabasi-albert and EdgeProbability
// to random-sparse.
type Graph struct {
	Kind            string  `json:"kind" yaml:"kind" toml:"kind"`
	EdgeProbability float64 `json:"edge_probability" yaml:"edge_probability" toml:"edge_probability"`
	Nodes  int    `json:"nodes" yaml:"nodes" toml:"nodes"`
	Attach int    `json:"attach" yaml:"attach" toml:"attach"`
	Seed   uint64 `json:"seed" yaml:"seed" toml:"seed"`
}

// Survey configures each trial.
type Survey struct {
	Seeds       int     `json:"seeds" yaml:"seeds" toml:"seeds"`
	Probability float64 `json:"probability" yaml:"probability" toml:"probability"`
	MinSize     int     `json:"min_size" yaml:"min_size" toml:"min_size"`
	MaxAttempts int     `json:"max_attempts" yaml:"max_attempts" toml:"max_attempts"`
	MaxSteps    int     `json:"max_steps" yaml:"max_steps" toml:"max_steps"`
}

// Preference configures the degree-biased category model.
type Preference struct {
	Categories   []string `json:"categories" yaml:"categories" toml:"categories"`
	Alpha        float64  `json:"alpha" yaml:"alpha" toml:"alpha"`
	BiasExponent float64  `json:"bias_exponent" yaml:"bias_exponent" toml:"bias_exponent"`
}

// Batch configures repetition and concurrency.
type Batch struct {
	Trials  int    `json:"trials" yaml:"trials" toml:"trials"`
	Workers int    `json:"workers" yaml:"workers" toml:"workers"`
	Seed    uint64 `json:"seed" yaml:"seed" toml:"seed"`
}

// Server configures the HTTP surface.
type Server struct {
	Addr string `json:"addr" yaml:"addr" toml:"addr"`
}

// Store selects the report backend by DSN (see internal/store.Open).
type Store struct {
	DSN string `json:"dsn" yaml:"dsn" toml:"dsn"`
}

// Default returns the classroom exercise configuration: a 3000-vertex
// backbone with m=2, five seeds, p=0.15 and ten trials.
func Default() Config {
	m := preference.DefaultModel()
	p := simulation.DefaultParams()
	return Config{
		Graph: Graph{Kind: KindBarabasiAlbert, Nodes: 3000, Attach: 2, Seed: 1},
		Survey: Survey{
			Seeds:       p.Seeds,
			Probability: p.Probability,
			MinSize:     p.MinSurveySize,
			MaxAttempts: p.MaxAttempts,
			MaxSteps:    p.MaxSteps,
		},
		Preference: Preference{Categories: m.Categories, Alpha: m.Alpha, BiasExponent: m.BiasExponent},
		Batch:      Batch{Trials: simulation.DefaultTrials, Seed: 1},
		Server:     Server{Addr: ":8080"},
		Store:      Store{DSN: "memory://"},
	}
}

// Load reads path over the defaults. An empty path returns Default().
// The format follows the extension: .yaml/.yml or .toml.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("Load %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		return Config{}, fmt.Errorf("Load %s: %q: %w", path, ext, ErrUnsupportedFormat)
	}
	if err != nil {
		return Config{}, fmt.Errorf("Load %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := c.Graph.validate(); err != nil {
		return err
	}
	switch {
	case c.Batch.Trials < 1:
		return fmt.Errorf("batch.trials=%d: %w", c.Batch.Trials, ErrInvalidConfig)
	case c.Batch.Workers < 0:
		return fmt.Errorf("batch.workers=%d: %w", c.Batch.Workers, ErrInvalidConfig)
	case c.Server.Addr == "":
		return fmt.Errorf("server.addr is empty: %w", ErrInvalidConfig)
	case math.IsNaN(c.Survey.Probability):
		return fmt.Errorf("survey.probability is NaN: %w", ErrInvalidConfig)
	}
	if err := c.Params().Validate(c.Graph.Nodes); err != nil {
		return fmt.Errorf("survey: %w: %w", ErrInvalidConfig, err)
	}
	if err := c.Model().Validate(); err != nil {
		return fmt.Errorf("preference: %w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Params converts the survey section.
func (c Config) Params() simulation.Params {
	return simulation.Params{
		Seeds:         c.Survey.Seeds,
		Probability:   c.Survey.Probability,
		MinSurveySize: c.Survey.MinSize,
		MaxAttempts:   c.Survey.MaxAttempts,
		MaxSteps:      c.Survey.MaxSteps,
	}
}

// Model converts the preference section.
func (c Config) Model() preference.Model {
	cats := make([]string, len(c.Preference.Categories))
	copy(cats, c.Preference.Categories)
	return preference.Model{Categories: cats, Alpha: c.Preference.Alpha, BiasExponent: c.Preference.BiasExponent}
}
