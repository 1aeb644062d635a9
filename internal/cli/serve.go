// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/rdsim/internal/server"
	"github.com/katalvlaran/rdsim/internal/store"
)

func newServeCmd() *cobra.Command {
	var (
		cfgPath string
		o       overrides
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the estimators and simulations over HTTP",
		Example: `  rdsim serve --addr :9090
  rdsim serve --store redis://localhost:6379/0`,
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

			st, err := store.Open(ctx, cfg.Store.DSN)
			if err != nil {
				return err
			}
			defer st.Close()

			srv := server.New(server.Options{Config: cfg, Store: st, Logger: logger})
			return srv.ListenAndServe(ctx)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&cfgPath, "config", "c", "", "YAML or TOML config file")
	fs.StringVar(&o.addr, "addr", "", "listen address")
	fs.StringVar(&o.store, "store", "", "report store DSN (memory://, leveldb://dir, redis://host)")

	return cmd
}
