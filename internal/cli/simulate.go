// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rdsim/internal/store"
	"github.com/katalvlaran/rdsim/simulation"
)

func newSimulateCmd() *cobra.Command {
	var (
		cfgPath string
		asJSON  bool
		o       overrides
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a batch of RDS trials and compare both estimators",
		Long: `Build a Barabási–Albert backbone, assign each vertex a category with the
degree-biased preference model, then run independent trials. Each trial
percolates from random seeds, surveys the participants and scores the naive
and corrected estimates against the true distribution.

The report is also saved under its run ID when a persistent store is
configured (--store, store.dsn in the config file or RDSIM_STORE).`,
		Example: `  rdsim simulate
  rdsim simulate --trials 50 --probability 0.2 --seed 7
  rdsim simulate --config run.yaml --store leveldb://./runs --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := commandLogger(ctx)

			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}
			if err := o.apply(cmd.Flags(), &cfg); err != nil {
				return err
			}

			sw := startStopwatch(logger)
			g, err := cfg.Backbone()
			if err != nil {
				return err
			}
			sw.finish("Built backbone with %d vertices and %d edges", g.Order(), g.Size())

			rep, err := simulation.RunBatch(ctx, g, cfg.Model(), cfg.Params(), simulation.BatchOptions{
				Trials:  cfg.Batch.Trials,
				Workers: cfg.Batch.Workers,
				Seed:    cfg.Batch.Seed,
				Logger:  logger,
			})
			if err != nil {
				return err
			}

			if persistent(cfg.Store.DSN) {
				st, err := store.Open(ctx, cfg.Store.DSN)
				if err != nil {
					return err
				}
				defer st.Close()
				if err := st.Save(ctx, rep); err != nil {
					return err
				}
				logger.Info("saved report", "run", rep.RunID, "store", cfg.Store.DSN)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rep)
			}
			printReport(cmd.OutOrStdout(), rep)
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&cfgPath, "config", "c", "", "YAML or TOML config file")
	fs.BoolVar(&asJSON, "json", false, "print the full report as JSON")
	fs.StringVar(&o.store, "store", "", "save the report to this store (memory://, leveldb://dir, redis://host)")
	o.graphFlags(fs)
	o.surveyFlags(fs)
	o.batchFlags(fs)

	return cmd
}

// persistent reports whether dsn names a store that outlives the process.
func persistent(dsn string) bool {
	switch dsn {
	case "", "memory", "memory://":
		return false
	}
	return true
}
