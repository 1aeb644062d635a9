// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/rdsim/estimator"
	"github.com/katalvlaran/rdsim/simulation"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorRed   = lipgloss.Color("167")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleLabel   = lipgloss.NewStyle().Foreground(colorGray)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleFailure = lipgloss.NewStyle().Foreground(colorRed)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
)

func printKV(w io.Writer, label string, value any) {
	fmt.Fprintf(w, "  %s %s\n", styleLabel.Render(fmt.Sprintf("%-20s", label)), styleNumber.Render(fmt.Sprint(value)))
}

// printReport writes the batch summary followed by one row per trial.
func printReport(w io.Writer, rep *simulation.Report) {
	s := rep.Summary
	fmt.Fprintln(w, styleTitle.Render("RDS simulation"))
	printKV(w, "run", rep.RunID)
	printKV(w, "backbone", fmt.Sprintf("%d vertices, %d edges", rep.Vertices, rep.Edges))
	printKV(w, "seeds / p", fmt.Sprintf("%d / %.3g", rep.Params.Seeds, rep.Params.Probability))
	printKV(w, "trials", fmt.Sprintf("%d on %d workers in %s", s.Trials, rep.Workers, rep.Elapsed.Round(time.Millisecond)))
	printKV(w, "mean survey size", fmt.Sprintf("%.1f", s.MeanSurveySize))
	printKV(w, "mean naive MSE", fmt.Sprintf("%.3e", s.MeanNaiveMSE))
	printKV(w, "mean corrected MSE", fmt.Sprintf("%.3e", s.MeanCorrectedMSE))
	printKV(w, "improvement", fmt.Sprintf("%.2fx", s.ImprovementFactor))

	rate := fmt.Sprintf("%d/%d (%.0f%%)", s.Successes, s.Trials, 100*s.SuccessRate)
	if s.SuccessRate > 0.5 {
		rate = styleSuccess.Render(iconSuccess + " " + rate)
	} else {
		rate = styleFailure.Render(iconError + " " + rate)
	}
	fmt.Fprintf(w, "  %s %s\n\n", styleLabel.Render(fmt.Sprintf("%-20s", "corrected wins")), rate)

	fmt.Fprintln(w, styleDim.Render(fmt.Sprintf("  %5s %8s %6s %12s %12s", "trial", "attempts", "size", "naive", "corrected")))
	for _, t := range rep.Trials {
		mark := styleFailure.Render(iconError)
		if t.Improved() {
			mark = styleSuccess.Render(iconSuccess)
		}
		fmt.Fprintf(w, "  %5d %8d %6d %12.3e %12.3e %s\n",
			t.Index, t.Attempts, len(t.Survey), t.NaiveMSE, t.CorrectedMSE, mark)
	}
}

// printEstimates writes naive and corrected shares per category.
func printEstimates(w io.Writer, rows int, naive, corrected estimator.Distribution) {
	fmt.Fprintln(w, styleTitle.Render(fmt.Sprintf("Estimates from %d respondents", rows)))
	fmt.Fprintln(w, styleDim.Render(fmt.Sprintf("  %-16s %9s %9s", "category", "naive", "corrected")))
	for _, c := range corrected.Categories() {
		fmt.Fprintf(w, "  %-16s %9.4f %s\n", c, naive.Get(c), styleNumber.Render(fmt.Sprintf("%9.4f", corrected.Get(c))))
	}
}
