package estimator_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rdsim/estimator"
	"github.com/katalvlaran/rdsim/rng"
	"github.com/katalvlaran/rdsim/survey"
)

// starSurvey is the full 5-vertex star: hub "Y" (degree 4), leaves "X".
var starSurvey = survey.Table{
	{ParticipantID: 0, Category: "Y", Degree: 4},
	{ParticipantID: 1, Category: "X", Degree: 1},
	{ParticipantID: 2, Category: "X", Degree: 1},
	{ParticipantID: 3, Category: "X", Degree: 1},
	{ParticipantID: 4, Category: "X", Degree: 1},
}

func TestNaive_Star(t *testing.T) {
	d, err := estimator.Naive(starSurvey)
	require.NoError(t, err)
	assert.InDelta(t, 0.8, d.Get("X"), 1e-12)
	assert.InDelta(t, 0.2, d.Get("Y"), 1e-12)
	assert.Equal(t, []string{"X", "Y"}, d.Categories())
}

func TestCorrected_Star(t *testing.T) {
	d, err := estimator.Corrected(starSurvey)
	require.NoError(t, err)
	assert.InDelta(t, 4/4.25, d.Get("X"), 1e-12)
	assert.InDelta(t, 0.25/4.25, d.Get("Y"), 1e-12)
	assert.Zero(t, d.Get("Z"))
}

func TestEstimators_Errors(t *testing.T) {
	for name, fn := range map[string]func(survey.Table) (estimator.Distribution, error){
		"naive":     estimator.Naive,
		"corrected": estimator.Corrected,
	} {
		t.Run(name, func(t *testing.T) {
			d, err := fn(nil)
			assert.Nil(t, d)
			assert.ErrorIs(t, err, estimator.ErrEmptySurvey)

			_, err = fn(survey.Table{{ParticipantID: 1, Category: "A", Degree: -3}})
			assert.ErrorIs(t, err, survey.ErrNegativeDegree)

			_, err = fn(survey.Table{{ParticipantID: 1, Degree: 3}})
			assert.ErrorIs(t, err, survey.ErrEmptyCategory)
		})
	}
}

// TestCorrected_ZeroDegreeFloor: an isolated respondent weighs like degree 1.
func TestCorrected_ZeroDegreeFloor(t *testing.T) {
	d, err := estimator.Corrected(survey.Table{
		{ParticipantID: 0, Category: "A", Degree: 0},
		{ParticipantID: 1, Category: "B", Degree: 1},
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, d.Get("A"), 1e-12)
	assert.InDelta(t, 0.5, d.Get("B"), 1e-12)
}

// randomTable draws a survey with heavy-tailed degrees over a few categories.
func randomTable(seed uint64, rows int) survey.Table {
	r := rng.New(seed)
	cats := []string{"Facebook", "Instagram", "LinkedIn", "TikTok", "X", "YouTube"}
	t := make(survey.Table, rows)
	for i := range t {
		t[i] = survey.Record{
			ParticipantID: i,
			Category:      cats[r.IntN(len(cats))],
			Degree:        int(math.Floor(1 / (1 - r.Float64()))),
		}
	}
	return t
}

// TestEstimators_Normalized checks every estimate is a probability vector.
func TestEstimators_Normalized(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		tbl := randomTable(seed, 1+int(seed)*7)
		for _, fn := range []func(survey.Table) (estimator.Distribution, error){estimator.Naive, estimator.Corrected} {
			d, err := fn(tbl)
			require.NoError(t, err)
			assert.InDelta(t, 1.0, d.Sum(), 1e-9)
			for c, v := range d {
				assert.GreaterOrEqual(t, v, 0.0, "category %s", c)
			}
		}
	}
}

// TestEstimators_Idempotent requires bit-identical repeated results.
func TestEstimators_Idempotent(t *testing.T) {
	tbl := randomTable(7, 500)
	for _, fn := range []func(survey.Table) (estimator.Distribution, error){estimator.Naive, estimator.Corrected} {
		a, err := fn(tbl)
		require.NoError(t, err)
		b, err := fn(tbl)
		require.NoError(t, err)
		require.Equal(t, a.Categories(), b.Categories())
		for _, c := range a.Categories() {
			assert.Equal(t, math.Float64bits(a[c]), math.Float64bits(b[c]), c)
		}
	}
}

func TestPopulation(t *testing.T) {
	d, err := estimator.Population([]string{"A", "B", "A", "A"})
	require.NoError(t, err)
	assert.Equal(t, estimator.Distribution{"A": 0.75, "B": 0.25}, d)

	_, err = estimator.Population(nil)
	assert.ErrorIs(t, err, estimator.ErrEmptySurvey)
	_, err = estimator.Population([]string{"A", ""})
	assert.ErrorIs(t, err, survey.ErrEmptyCategory)
}

func TestMSE(t *testing.T) {
	truth := estimator.Distribution{"A": 0.5, "B": 0.5}
	est := estimator.Distribution{"A": 0.7, "C": 0.3}

	// union {A,B,C}: (0.2², 0.5², 0.3²)
	assert.InDeltaSlice(t, []float64{0.04, 0.25, 0.09}, estimator.SquaredError(est, truth, nil), 1e-12)
	assert.InDelta(t, 0.38/3, estimator.MSE(est, truth, nil), 1e-12)

	// an explicit category list also averages over categories nobody chose
	cats := []string{"A", "B", "C", "D"}
	assert.InDelta(t, 0.38/4, estimator.MSE(est, truth, cats), 1e-12)

	assert.Zero(t, estimator.MSE(truth, truth, nil))
	assert.Zero(t, estimator.MSE(nil, nil, nil))
}

func ExampleCorrected() {
	tbl := survey.Table{
		{ParticipantID: 0, Category: "Y", Degree: 4},
		{ParticipantID: 1, Category: "X", Degree: 1},
		{ParticipantID: 2, Category: "X", Degree: 1},
		{ParticipantID: 3, Category: "X", Degree: 1},
		{ParticipantID: 4, Category: "X", Degree: 1},
	}
	naive, _ := estimator.Naive(tbl)
	corrected, _ := estimator.Corrected(tbl)
	for _, c := range corrected.Categories() {
		fmt.Printf("%s naive=%.3f corrected=%.3f\n", c, naive[c], corrected[c])
	}
	// Output:
	// X naive=0.800 corrected=0.941
	// Y naive=0.200 corrected=0.059
}
