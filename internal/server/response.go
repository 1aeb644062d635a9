// SPDX-License-Identifier: MIT

package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/katalvlaran/rdsim/builder"
	"github.com/katalvlaran/rdsim/core"
	"github.com/katalvlaran/rdsim/estimator"
	"github.com/katalvlaran/rdsim/internal/store"
	"github.com/katalvlaran/rdsim/percolation"
	"github.com/katalvlaran/rdsim/preference"
	"github.com/katalvlaran/rdsim/simulation"
	"github.com/katalvlaran/rdsim/survey"
)

// errBadRequest marks malformed or out-of-range request bodies.
var errBadRequest = errors.New("server: bad request")

// errorBody is the JSON shape of every non-2xx response.
type errorBody struct {
	Error string `json:"error"`
}

// clientErrors are the sentinels that mean the caller sent unusable input.
var clientErrors = []error{
	errBadRequest,
	estimator.ErrEmptySurvey,
	survey.ErrNegativeDegree,
	survey.ErrEmptyCategory,
	percolation.ErrInvalidProbability,
	percolation.ErrNoSeeds,
	percolation.ErrSeedNotFound,
	core.ErrVertexNotFound,
	core.ErrLoopNotAllowed,
	core.ErrMultiEdgeNotAllowed,
	builder.ErrTooFewVertices,
	preference.ErrInvalidModel,
	simulation.ErrInvalidParams,
}

// statusOf maps an error chain to an HTTP status.
func statusOf(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, simulation.ErrSurveyTooSmall), errors.Is(err, percolation.ErrBudgetExhausted):
		return http.StatusUnprocessableEntity
	}
	for _, target := range clientErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "status", status, "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "err", err)
	}
	s.writeJSON(w, status, errorBody{Error: err.Error()})
}

// decode reads one JSON value from the size-limited body, rejecting
// unknown fields and trailing data.
func decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode body: %w: %w", errBadRequest, err)
	}
	if dec.More() {
		return fmt.Errorf("decode body: trailing data: %w", errBadRequest)
	}
	return nil
}
