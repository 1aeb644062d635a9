// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "RDSIM_"

// LoadDotEnv loads KEY=VALUE files into the process environment without
// overriding variables that are already set. Missing files are skipped.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("LoadDotEnv %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides c from RDSIM_* variables:
//
//	RDSIM_GRAPH_KIND RDSIM_NODES RDSIM_ATTACH RDSIM_EDGE_PROBABILITY RDSIM_GRAPH_SEED
//	RDSIM_SEEDS RDSIM_PROBABILITY RDSIM_MIN_SURVEY RDSIM_MAX_ATTEMPTS RDSIM_MAX_STEPS
//	RDSIM_CATEGORIES (comma separated) RDSIM_ALPHA RDSIM_BIAS_EXPONENT
//	RDSIM_TRIALS RDSIM_WORKERS RDSIM_SEED RDSIM_ADDR RDSIM_STORE
//
// An unparsable value is an error rather than being ignored.
func (c *Config) ApplyEnv() error {
	return c.applyEnv(os.LookupEnv)
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	e := envReader{lookup: lookup}

	e.string("GRAPH_KIND", &c.Graph.Kind)
	e.int("NODES", &c.Graph.Nodes)
	e.int("ATTACH", &c.Graph.Attach)
	e.float("EDGE_PROBABILITY", &c.Graph.EdgeProbability)
	e.uint64("GRAPH_SEED", &c.Graph.Seed)

	e.int("SEEDS", &c.Survey.Seeds)
	e.float("PROBABILITY", &c.Survey.Probability)
	e.int("MIN_SURVEY", &c.Survey.MinSize)
	e.int("MAX_ATTEMPTS", &c.Survey.MaxAttempts)
	e.int("MAX_STEPS", &c.Survey.MaxSteps)

	if v, ok := lookup(EnvPrefix + "CATEGORIES"); ok {
		var cats []string
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				cats = append(cats, s)
			}
		}
		c.Preference.Categories = cats
	}
	e.float("ALPHA", &c.Preference.Alpha)
	e.float("BIAS_EXPONENT", &c.Preference.BiasExponent)

	e.int("TRIALS", &c.Batch.Trials)
	e.int("WORKERS", &c.Batch.Workers)
	e.uint64("SEED", &c.Batch.Seed)

	e.string("ADDR", &c.Server.Addr)
	e.string("STORE", &c.Store.DSN)

	return e.err
}

// envReader parses variables and keeps the first error.
type envReader struct {
	lookup func(string) (string, bool)
	err    error
}

func (e *envReader) get(key string) (string, bool) {
	if e.err != nil {
		return "", false
	}
	v, ok := e.lookup(EnvPrefix + key)
	return strings.TrimSpace(v), ok
}

func (e *envReader) fail(key, v string, err error) {
	e.err = fmt.Errorf("%s%s=%q: %w: %w", EnvPrefix, key, v, ErrInvalidConfig, err)
}

func (e *envReader) string(key string, dst *string) {
	if v, ok := e.get(key); ok {
		*dst = v
	}
}

func (e *envReader) int(key string, dst *int) {
	if v, ok := e.get(key); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			e.fail(key, v, err)
			return
		}
		*dst = n
	}
}

func (e *envReader) uint64(key string, dst *uint64) {
	if v, ok := e.get(key); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			e.fail(key, v, err)
			return
		}
		*dst = n
	}
}

func (e *envReader) float(key string, dst *float64) {
	if v, ok := e.get(key); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			e.fail(key, v, err)
			return
		}
		*dst = f
	}
}
