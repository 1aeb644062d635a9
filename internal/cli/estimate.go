// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rdsim/estimator"
	"github.com/katalvlaran/rdsim/survey"
)

func newEstimateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "estimate <survey.csv>",
		Short: "Estimate category shares from a survey CSV",
		Long: `Read participant_id,category,degree rows (a header row is optional) and
print the naive and the inverse-degree corrected category distribution.
Use "-" to read from standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open survey: %w", err)
				}
				defer f.Close()
				in = f
			}

			t, err := survey.ReadCSV(in)
			if err != nil {
				return err
			}
			naive, err := estimator.Naive(t)
			if err != nil {
				return err
			}
			corrected, err := estimator.Corrected(t)
			if err != nil {
				return err
			}

			commandLogger(cmd.Context()).Debug("read survey", "rows", t.Len(), "categories", len(t.Categories()))
			printEstimates(cmd.OutOrStdout(), t.Len(), naive, corrected)
			return nil
		},
	}
}
