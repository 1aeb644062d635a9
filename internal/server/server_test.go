package server_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rdsim/internal/config"
	"github.com/katalvlaran/rdsim/internal/server"
	"github.com/katalvlaran/rdsim/simulation"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(server.New(server.Options{Config: config.Default()}).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func post(t *testing.T, ts *httptest.Server, path, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(ts.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func get(t *testing.T, ts *httptest.Server, path string) *http.Response {
	t.Helper()
	resp, err := http.Get(ts.URL + path)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)
	resp := get(t, ts, "/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "ok", body["status"])
}

func TestEstimate_Star(t *testing.T) {
	ts := newTestServer(t)
	resp := post(t, ts, "/v1/estimate", `{
		"records": [
			{"participant_id": 0, "category": "Y", "degree": 4},
			{"participant_id": 1, "category": "X", "degree": 1},
			{"participant_id": 2, "category": "X", "degree": 1},
			{"participant_id": 3, "category": "X", "degree": 1},
			{"participant_id": 4, "category": "X", "degree": 1}
		],
		"truth": {"X": 0.8, "Y": 0.2}
	}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Size         int                `json:"size"`
		Naive        map[string]float64 `json:"naive"`
		Corrected    map[string]float64 `json:"corrected"`
		NaiveMSE     *float64           `json:"naive_mse"`
		CorrectedMSE *float64           `json:"corrected_mse"`
	}
	decodeBody(t, resp, &body)

	assert.Equal(t, 5, body.Size)
	assert.InDelta(t, 0.8, body.Naive["X"], 1e-12)
	assert.InDelta(t, 4/4.25, body.Corrected["X"], 1e-12)
	assert.InDelta(t, 0.25/4.25, body.Corrected["Y"], 1e-12)
	require.NotNil(t, body.NaiveMSE)
	require.NotNil(t, body.CorrectedMSE)
	assert.InDelta(t, 0, *body.NaiveMSE, 1e-12)
	assert.Greater(t, *body.CorrectedMSE, 0.0)
}

func TestPercolate_Star(t *testing.T) {
	ts := newTestServer(t)
	resp := post(t, ts, "/v1/percolate", `{
		"graph": {"nodes": 5, "edges": [[0,1],[0,2],[0,3],[0,4]]},
		"seeds": [1],
		"probability": 1,
		"seed": 7
	}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Participants []int    `json:"participants"`
		Edges        [][2]int `json:"edges"`
		Seeds        []int    `json:"seeds"`
		Steps        int      `json:"steps"`
	}
	decodeBody(t, resp, &body)

	assert.Equal(t, []int{0, 1, 2, 3, 4}, body.Participants)
	assert.Equal(t, [][2]int{{1, 0}, {0, 2}, {0, 3}, {0, 4}}, body.Edges)
	assert.Equal(t, []int{1}, body.Seeds)
	assert.Equal(t, 4, body.Steps)
}

func TestBadRequests(t *testing.T) {
	ts := newTestServer(t)
	star := `{"nodes": 5, "edges": [[0,1],[0,2],[0,3],[0,4]]}`

	tests := []struct {
		name, path, body string
		want             int
	}{
		{"empty survey", "/v1/estimate", `{"records": []}`, http.StatusBadRequest},
		{"negative degree", "/v1/estimate", `{"records": [{"participant_id":0,"category":"A","degree":-1}]}`, http.StatusBadRequest},
		{"blank category", "/v1/estimate", `{"records": [{"participant_id":0,"category":"","degree":1}]}`, http.StatusBadRequest},
		{"unknown field", "/v1/estimate", `{"rows": []}`, http.StatusBadRequest},
		{"malformed json", "/v1/estimate", `{"records": [`, http.StatusBadRequest},
		{"missing probability", "/v1/percolate", `{"graph": ` + star + `, "seeds": [0]}`, http.StatusBadRequest},
		{"probability range", "/v1/percolate", `{"graph": ` + star + `, "seeds": [0], "probability": 1.5}`, http.StatusBadRequest},
		{"no seeds", "/v1/percolate", `{"graph": ` + star + `, "seeds": [], "probability": 0.5}`, http.StatusBadRequest},
		{"seed out of range", "/v1/percolate", `{"graph": ` + star + `, "seeds": [9], "probability": 0.5}`, http.StatusBadRequest},
		{"self loop", "/v1/percolate", `{"graph": {"nodes": 2, "edges": [[1,1]]}, "seeds": [0], "probability": 0.5}`, http.StatusBadRequest},
		{"no nodes", "/v1/percolate", `{"graph": {"nodes": 0}, "seeds": [0], "probability": 0.5}`, http.StatusBadRequest},
		{"budget", "/v1/percolate", `{"graph": ` + star + `, "seeds": [0], "probability": 1, "max_steps": 1}`, http.StatusUnprocessableEntity},
		{"simulate nodes", "/v1/simulate", `{"graph": {"nodes": 1}}`, http.StatusBadRequest},
		{"simulate probability", "/v1/simulate", `{"survey": {"probability": -0.5}}`, http.StatusBadRequest},
		{"simulate trials", "/v1/simulate", `{"batch": {"trials": 5000}}`, http.StatusBadRequest},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp := post(t, ts, tc.path, tc.body)
			assert.Equal(t, tc.want, resp.StatusCode)

			var body map[string]string
			decodeBody(t, resp, &body)
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestSimulate_StoresReport(t *testing.T) {
	ts := newTestServer(t)

	resp := post(t, ts, "/v1/simulate", `{
		"graph": {"nodes": 400, "attach": 2, "seed": 3},
		"survey": {"probability": 0.3, "min_size": 10},
		"batch": {"trials": 3, "workers": 2, "seed": 11}
	}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var rep simulation.Report
	decodeBody(t, resp, &rep)
	require.NotEmpty(t, rep.RunID)
	assert.Equal(t, "/v1/runs/"+rep.RunID, resp.Header.Get("Location"))
	assert.Len(t, rep.Trials, 3)
	assert.Equal(t, 400, rep.Vertices)
	assert.Equal(t, simulation.DefaultSeeds, rep.Params.Seeds)
	assert.Equal(t, 3, rep.Summary.Trials)

	list := get(t, ts, "/v1/runs")
	require.Equal(t, http.StatusOK, list.StatusCode)
	var runs map[string][]string
	decodeBody(t, list, &runs)
	assert.Equal(t, []string{rep.RunID}, runs["runs"])

	one := get(t, ts, "/v1/runs/"+rep.RunID)
	require.Equal(t, http.StatusOK, one.StatusCode)
	var loaded simulation.Report
	decodeBody(t, one, &loaded)
	assert.Equal(t, rep.Summary, loaded.Summary)

	metrics := get(t, ts, "/metrics")
	require.Equal(t, http.StatusOK, metrics.StatusCode)
	text, err := io.ReadAll(metrics.Body)
	require.NoError(t, err)
	assert.True(t, bytes.Contains(text, []byte("rdsim_trials_total")))
}

func TestRuns_Empty(t *testing.T) {
	ts := newTestServer(t)

	resp := get(t, ts, "/v1/runs")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var runs map[string][]string
	decodeBody(t, resp, &runs)
	assert.NotNil(t, runs["runs"])
	assert.Empty(t, runs["runs"])

	missing := get(t, ts, "/v1/runs/does-not-exist")
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}

func TestSimulate_GraphKind(t *testing.T) {
	ts := newTestServer(t)

	resp := post(t, ts, "/v1/simulate", `{
		"graph": {"kind": "complete", "nodes": 60},
		"survey": {"probability": 0.3, "min_size": 10},
		"batch": {"trials": 2, "seed": 4}
	}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var rep simulation.Report
	decodeBody(t, resp, &rep)
	assert.Equal(t, 60, rep.Vertices)
	assert.Equal(t, 60*59/2, rep.Edges)

	bad := post(t, ts, "/v1/simulate", `{"graph": {"kind": "lattice"}}`)
	assert.Equal(t, http.StatusBadRequest, bad.StatusCode)
}
