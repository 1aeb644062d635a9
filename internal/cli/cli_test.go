package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rdsim/internal/cli"
	"github.com/katalvlaran/rdsim/internal/store"
	"github.com/katalvlaran/rdsim/simulation"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := cli.NewRootCommand(&out, &errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

const starCSV = `participant_id,category,degree
0,Y,4
1,X,1
2,X,1
3,X,1
4,X,1
`

func TestEstimate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "survey.csv")
	require.NoError(t, os.WriteFile(path, []byte(starCSV), 0o600))

	out, _, err := execute(t, "estimate", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Estimates from 5 respondents")
	assert.Contains(t, out, "0.8000")
	assert.Contains(t, out, "0.9412")
	assert.Contains(t, out, "0.0588")
}

func TestEstimate_Stdin(t *testing.T) {
	var out, errOut bytes.Buffer
	root := cli.NewRootCommand(&out, &errOut)
	root.SetIn(strings.NewReader(starCSV))
	root.SetArgs([]string{"estimate", "-"})
	require.NoError(t, root.ExecuteContext(context.Background()))
	assert.Contains(t, out.String(), "0.9412")
}

func TestEstimate_Errors(t *testing.T) {
	_, _, err := execute(t, "estimate")
	assert.Error(t, err, "missing argument")

	_, _, err = execute(t, "estimate", filepath.Join(t.TempDir(), "none.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(bad, []byte("0,A,-3\n"), 0o600))
	_, _, err = execute(t, "estimate", bad)
	assert.Error(t, err)
}

var smallRun = []string{
	"--nodes", "300", "--probability", "0.3", "--min-size", "10",
	"--trials", "3", "--workers", "2", "--seed", "5",
}

func TestSimulate_JSON(t *testing.T) {
	out, logs, err := execute(t, append([]string{"simulate", "--json", "-v"}, smallRun...)...)
	require.NoError(t, err)

	var rep simulation.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, 300, rep.Vertices)
	assert.Len(t, rep.Trials, 3)
	assert.Equal(t, uint64(5), rep.Seed)
	assert.InDelta(t, 0.3, rep.Params.Probability, 1e-12)

	assert.Contains(t, logs, "Built backbone")
	assert.Contains(t, logs, "trial done", "-v enables debug logs")
}

func TestSimulate_Table(t *testing.T) {
	out, _, err := execute(t, append([]string{"simulate"}, smallRun...)...)
	require.NoError(t, err)

	assert.Contains(t, out, "RDS simulation")
	assert.Contains(t, out, "corrected wins")
	assert.Contains(t, out, "300 vertices")
}

func TestSimulate_Store(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "runs")
	out, _, err := execute(t, append([]string{"simulate", "--json", "--store", "leveldb://" + dir}, smallRun...)...)
	require.NoError(t, err)

	var rep simulation.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))

	st, err := store.OpenLevelDB(dir)
	require.NoError(t, err)
	defer st.Close()
	loaded, err := st.Load(context.Background(), rep.RunID)
	require.NoError(t, err)
	assert.Equal(t, rep.Summary, loaded.Summary)
}

// loadSaved opens the LevelDB store at dir and returns the report for id.
func loadSaved(t *testing.T, dir, id string) *simulation.Report {
	t.Helper()
	st, err := store.OpenLevelDB(dir)
	require.NoError(t, err)
	defer st.Close()
	rep, err := st.Load(context.Background(), id)
	require.NoError(t, err)
	return rep
}

func TestSimulate_StoreFromConfig(t *testing.T) {
	tmp := t.TempDir()
	dir := filepath.Join(tmp, "runs")
	path := filepath.Join(tmp, "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store:\n  dsn: leveldb://"+dir+"\n"), 0o600))

	out, _, err := execute(t, append([]string{"simulate", "--json", "--config", path}, smallRun...)...)
	require.NoError(t, err)

	var rep simulation.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, rep.Summary, loadSaved(t, dir, rep.RunID).Summary)
}

func TestSimulate_StoreFromEnv(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "runs")
	t.Setenv("RDSIM_STORE", "leveldb://"+dir)

	out, _, err := execute(t, append([]string{"simulate", "--json"}, smallRun...)...)
	require.NoError(t, err)

	var rep simulation.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, rep.RunID, loadSaved(t, dir, rep.RunID).RunID)
}

func TestSimulate_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[graph]
nodes = 250

[survey]
probability = 0.3
min_size = 5

[batch]
trials = 2
seed = 9
`), 0o600))

	out, _, err := execute(t, "simulate", "--json", "--config", path, "--trials", "4")
	require.NoError(t, err)

	var rep simulation.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, 250, rep.Vertices)
	assert.Len(t, rep.Trials, 4, "flags win over the file")
	assert.Equal(t, uint64(9), rep.Seed)
}

func TestSimulate_Kind(t *testing.T) {
	out, _, err := execute(t, "simulate", "--json", "--kind", "cycle", "--nodes", "40",
		"--probability", "1", "--min-size", "40", "--trials", "2")
	require.NoError(t, err)

	var rep simulation.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, 40, rep.Edges)
	for _, tr := range rep.Trials {
		assert.Len(t, tr.Survey, 40)
	}
}

func TestSimulate_InvalidConfig(t *testing.T) {
	_, _, err := execute(t, "simulate", "--probability", "2")
	assert.Error(t, err)

	_, _, err = execute(t, "simulate", "--config", "run.ini")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	cli.SetVersion("v1.2.3", "abc123", "2026-01-01")
	out, _, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "rdsim v1.2.3")
	assert.Contains(t, out, "abc123")
}
