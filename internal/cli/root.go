// SPDX-License-Identifier: MIT

// Package cli implements the rdsim command-line interface.
//
// Commands:
//   - simulate: run a batch of RDS trials on a fresh backbone and report
//     how often the corrected estimator beats the naive one
//   - estimate: naive and corrected estimates for a survey CSV
//   - serve:    start the HTTP service
//
// All commands accept --verbose (-v) for debug logging. The logger travels
// in the command context.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the build information shown by --version.
func SetVersion(v, c, d string) {
	version, commit, date = v, c, d
}

// Execute runs the rdsim command tree with os.Args.
func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// NewRootCommand builds the command tree. Results go to out, logs to errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "rdsim",
		Short:         "rdsim simulates respondent-driven sampling surveys",
		Long:          `rdsim samples a synthetic social network by bond percolation from a few seeds and compares a naive category estimate with the inverse-degree corrected one.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(contextWithLogger(cmd.Context(), consoleLogger(errOut, verbose)))
		},
	}

	root.SetOut(out)
	root.SetErr(errOut)
	root.SetVersionTemplate(fmt.Sprintf("rdsim %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newSimulateCmd())
	root.AddCommand(newEstimateCmd())
	root.AddCommand(newServeCmd())

	return root
}
