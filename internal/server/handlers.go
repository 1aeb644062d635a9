// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/katalvlaran/rdsim/core"
	"github.com/katalvlaran/rdsim/estimator"
	"github.com/katalvlaran/rdsim/internal/config"
	"github.com/katalvlaran/rdsim/percolation"
	"github.com/katalvlaran/rdsim/rng"
	"github.com/katalvlaran/rdsim/simulation"
	"github.com/katalvlaran/rdsim/survey"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// estimateRequest carries survey rows and, optionally, the true
// distribution to score both estimates against.
type estimateRequest struct {
	Records survey.Table           `json:"records"`
	Truth   estimator.Distribution `json:"truth,omitempty"`
}

type estimateResponse struct {
	Size         int                    `json:"size"`
	Naive        estimator.Distribution `json:"naive"`
	Corrected    estimator.Distribution `json:"corrected"`
	NaiveMSE     *float64               `json:"naive_mse,omitempty"`
	CorrectedMSE *float64               `json:"corrected_mse,omitempty"`
}

func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	var req estimateRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	naive, err := estimator.Naive(req.Records)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	corrected, err := estimator.Corrected(req.Records)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := estimateResponse{Size: req.Records.Len(), Naive: naive, Corrected: corrected}
	if len(req.Truth) > 0 {
		nm := estimator.MSE(naive, req.Truth, nil)
		cm := estimator.MSE(corrected, req.Truth, nil)
		resp.NaiveMSE, resp.CorrectedMSE = &nm, &cm
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// graphBody is an edge-list graph over vertices 0..Nodes-1.
type graphBody struct {
	Nodes int      `json:"nodes"`
	Edges [][2]int `json:"edges"`
}

func (gb graphBody) build() (*core.Graph, error) {
	if gb.Nodes < 1 || gb.Nodes > maxNodes {
		return nil, fmt.Errorf("graph: nodes=%d: %w", gb.Nodes, errBadRequest)
	}
	b := core.NewBuilder()
	b.AddVertices(gb.Nodes)
	for _, e := range gb.Edges {
		if err := b.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("graph: %w", err)
		}
	}
	return b.Build(), nil
}

type percolateRequest struct {
	Graph       graphBody `json:"graph"`
	Seeds       []int     `json:"seeds"`
	Probability *float64  `json:"probability"`
	Seed        uint64    `json:"seed"`
	MaxSteps    int       `json:"max_steps"`
}

type percolateResponse struct {
	Participants []int    `json:"participants"`
	Edges        [][2]int `json:"edges"`
	Seeds        []int    `json:"seeds"`
	Steps        int      `json:"steps"`
}

func (s *Server) handlePercolate(w http.ResponseWriter, r *http.Request) {
	var req percolateRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.Probability == nil {
		s.writeError(w, r, fmt.Errorf("probability is required: %w", errBadRequest))
		return
	}
	g, err := req.Graph.build()
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	res, err := percolation.Percolate(g, req.Seeds, *req.Probability, rng.New(req.Seed),
		percolation.WithContext(r.Context()),
		percolation.WithMaxSteps(req.MaxSteps),
	)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	edges := make([][2]int, len(res.Edges))
	for i, e := range res.Edges {
		edges[i] = [2]int{e.From, e.To}
	}
	s.writeJSON(w, http.StatusOK, percolateResponse{
		Participants: res.Participants,
		Edges:        edges,
		Seeds:        res.Seeds,
		Steps:        res.Steps,
	})
}

// handleSimulate accepts a partial config.Config; omitted fields keep the
// server defaults. The report is stored before it is returned.
func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	cfg := s.cfg
	cfg.Preference.Categories = append([]string(nil), s.cfg.Preference.Categories...)
	if err := decode(w, r, &cfg); err != nil {
		s.writeError(w, r, err)
		return
	}
	cfg.Server, cfg.Store = s.cfg.Server, s.cfg.Store

	if err := cfg.Validate(); err != nil {
		s.writeError(w, r, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}
	if cfg.Graph.Nodes > maxNodes || cfg.Batch.Trials > maxTrials {
		s.writeError(w, r, fmt.Errorf("nodes=%d trials=%d over limit: %w",
			cfg.Graph.Nodes, cfg.Batch.Trials, errBadRequest))
		return
	}

	rep, err := s.runBatch(r.Context(), cfg)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.store.Save(r.Context(), rep); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Location", "/v1/runs/"+rep.RunID)
	s.writeJSON(w, http.StatusCreated, rep)
}

func (s *Server) runBatch(ctx context.Context, cfg config.Config) (*simulation.Report, error) {
	g, err := cfg.Backbone()
	if err != nil {
		return nil, err
	}
	return simulation.RunBatch(ctx, g, cfg.Model(), cfg.Params(), simulation.BatchOptions{
		Trials:  cfg.Batch.Trials,
		Workers: cfg.Batch.Workers,
		Seed:    cfg.Batch.Seed,
		Logger:  s.logger,
		Metrics: s.metrics,
	})
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	ids, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	s.writeJSON(w, http.StatusOK, map[string][]string{"runs": ids})
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	rep, err := s.store.Load(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, rep)
}
