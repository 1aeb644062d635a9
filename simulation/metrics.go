// SPDX-License-Identifier: MIT

package simulation

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Trial outcome labels for rdsim_trials_total.
const (
	OutcomeImproved    = "improved"
	OutcomeNotImproved = "not_improved"
	OutcomeFailed      = "failed"
)

// Metrics records trial outcomes. A nil *Metrics is a valid no-op.
type Metrics struct {
	trials     *prometheus.CounterVec
	surveySize prometheus.Histogram
	steps      prometheus.Histogram
	attempts   prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg yields working but unregistered collectors.
// Registering twice on the same registry panics, as with promauto.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		trials: f.NewCounterVec(prometheus.CounterOpts{
			Name: "rdsim_trials_total",
			Help: "Simulation trials by outcome",
		}, []string{"outcome"}),
		surveySize: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "rdsim_survey_size",
			Help:    "Participants per accepted survey",
			Buckets: prometheus.ExponentialBuckets(10, 2, 10),
		}),
		steps: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "rdsim_percolation_steps",
			Help:    "Frontier pops per accepted percolation",
			Buckets: prometheus.ExponentialBuckets(10, 4, 8),
		}),
		attempts: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "rdsim_trial_attempts",
			Help:    "Percolation runs per trial",
			Buckets: []float64{1, 2, 5, 10, 20, 50, 100},
		}),
	}
}

// observe records one finished trial; res is nil when err is set.
func (m *Metrics) observe(res *TrialResult, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.trials.WithLabelValues(OutcomeFailed).Inc()
		return
	}
	outcome := OutcomeNotImproved
	if res.Improved() {
		outcome = OutcomeImproved
	}
	m.trials.WithLabelValues(outcome).Inc()
	m.surveySize.Observe(float64(len(res.Survey)))
	m.steps.Observe(float64(res.Steps))
	m.attempts.Observe(float64(res.Attempts))
}
