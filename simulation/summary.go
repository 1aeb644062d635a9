// SPDX-License-Identifier: MIT

package simulation

import "gonum.org/v1/gonum/stat"

// Summary aggregates a batch.
type Summary struct {
	Trials int `json:"trials"`

	// Successes counts trials where the corrected MSE beat the naive MSE.
	Successes   int     `json:"successes"`
	SuccessRate float64 `json:"success_rate"`

	MeanNaiveMSE     float64 `json:"mean_naive_mse"`
	MeanCorrectedMSE float64 `json:"mean_corrected_mse"`

	// ImprovementFactor is MeanNaiveMSE / MeanCorrectedMSE, or 0 when the
	// corrected error is exactly zero and the ratio is undefined.
	ImprovementFactor float64 `json:"improvement_factor"`

	MeanSurveySize float64 `json:"mean_survey_size"`
}

// Summarize aggregates results. An empty slice yields the zero Summary.
func Summarize(results []TrialResult) Summary {
	n := len(results)
	if n == 0 {
		return Summary{}
	}

	naive := make([]float64, n)
	corrected := make([]float64, n)
	sizes := make([]float64, n)
	s := Summary{Trials: n}
	for i := range results {
		r := &results[i]
		naive[i] = r.NaiveMSE
		corrected[i] = r.CorrectedMSE
		sizes[i] = float64(len(r.Survey))
		if r.Improved() {
			s.Successes++
		}
	}

	s.SuccessRate = float64(s.Successes) / float64(n)
	s.MeanNaiveMSE = stat.Mean(naive, nil)
	s.MeanCorrectedMSE = stat.Mean(corrected, nil)
	s.MeanSurveySize = stat.Mean(sizes, nil)
	if s.MeanCorrectedMSE > 0 {
		s.ImprovementFactor = s.MeanNaiveMSE / s.MeanCorrectedMSE
	}
	return s
}
