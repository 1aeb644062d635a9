// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/rdsim/internal/config"
)

// loadConfig layers defaults, the optional file, .env and RDSIM_* variables.
func loadConfig(path string) (config.Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// overrides holds flag values that replace config entries when set.
type overrides struct {
	kind            string
	nodes, attach   int
	graphSeed       uint64
	seeds, minSize  int
	probability     float64
	trials, workers int
	seed            uint64
	addr, store     string
}

func (o *overrides) graphFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.kind, "kind", "", "backbone generator: barabasi-albert, random-sparse, star, path, cycle, complete")
	fs.IntVar(&o.nodes, "nodes", 0, "backbone vertex count")
	fs.IntVar(&o.attach, "attach", 0, "edges added per new vertex")
	fs.Uint64Var(&o.graphSeed, "graph-seed", 0, "backbone RNG seed")
}

func (o *overrides) surveyFlags(fs *pflag.FlagSet) {
	fs.IntVar(&o.seeds, "seeds", 0, "initial participants per trial")
	fs.Float64Var(&o.probability, "probability", 0, "per-edge recruitment probability")
	fs.IntVar(&o.minSize, "min-size", 0, "smallest accepted survey")
}

func (o *overrides) batchFlags(fs *pflag.FlagSet) {
	fs.IntVar(&o.trials, "trials", 0, "number of trials")
	fs.IntVar(&o.workers, "workers", 0, "concurrent trials (0 = GOMAXPROCS)")
	fs.Uint64Var(&o.seed, "seed", 0, "batch RNG seed")
}

// apply copies every changed flag onto cfg and validates the result.
func (o *overrides) apply(fs *pflag.FlagSet, cfg *config.Config) error {
	set := func(name string, fn func()) {
		if fs.Lookup(name) != nil && fs.Changed(name) {
			fn()
		}
	}
	set("kind", func() { cfg.Graph.Kind = o.kind })
	set("nodes", func() { cfg.Graph.Nodes = o.nodes })
	set("attach", func() { cfg.Graph.Attach = o.attach })
	set("graph-seed", func() { cfg.Graph.Seed = o.graphSeed })
	set("seeds", func() { cfg.Survey.Seeds = o.seeds })
	set("probability", func() { cfg.Survey.Probability = o.probability })
	set("min-size", func() { cfg.Survey.MinSize = o.minSize })
	set("trials", func() { cfg.Batch.Trials = o.trials })
	set("workers", func() { cfg.Batch.Workers = o.workers })
	set("seed", func() { cfg.Batch.Seed = o.seed })
	set("addr", func() { cfg.Server.Addr = o.addr })
	set("store", func() { cfg.Store.DSN = o.store })

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
