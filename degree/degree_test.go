package degree_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rdsim/builder"
	"github.com/katalvlaran/rdsim/core"
	"github.com/katalvlaran/rdsim/degree"
	"github.com/katalvlaran/rdsim/rng"
)

func mustBuild(t *testing.T, opts []builder.BuilderOption, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(opts, cons...)
	require.NoError(t, err)
	return g
}

func TestDistribution_Star(t *testing.T) {
	g := mustBuild(t, nil, builder.Star(5))

	p, err := degree.Distribution(g)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0.8, 0, 0, 0.2}, p, 1e-12)
	assert.InDeltaSlice(t, []float64{1, 0.2, 0.2, 0.2, 0}, degree.CCDFFromDistribution(p), 1e-12)

	_, err = degree.Distribution(nil)
	assert.ErrorIs(t, err, degree.ErrGraphNil)
}

func TestCCDFFromDistribution(t *testing.T) {
	got := degree.CCDFFromDistribution([]float64{0, 0.5, 0.3, 0.2})
	assert.InDeltaSlice(t, []float64{1, 0.5, 0.2, 0}, got, 1e-12)
	for _, v := range got {
		assert.GreaterOrEqual(t, v, 0.0)
	}
}

// TestCCDF_StrictlyAbove checks P(X > x) excludes ties and decreases strictly.
func TestCCDF_StrictlyAbove(t *testing.T) {
	g := mustBuild(t, []builder.BuilderOption{builder.WithSeed(42)}, builder.BarabasiAlbert(500, 2))
	seq := g.Degrees()

	pts, err := degree.CCDF(seq)
	require.NoError(t, err)
	require.NotEmpty(t, pts)

	assert.Equal(t, degree.Point{X: 0, P: 1}, pts[0])
	assert.Zero(t, pts[len(pts)-1].P)
	for i := 1; i < len(pts); i++ {
		assert.Less(t, pts[i].P, pts[i-1].P, "not decreasing at %d", i)
		assert.Less(t, pts[i-1].X, pts[i].X)
	}

	for _, pt := range pts {
		above := 0
		for _, d := range seq {
			if d > pt.X {
				above++
			}
		}
		assert.InDelta(t, float64(above)/float64(len(seq)), pt.P, 1e-12, "x=%d", pt.X)
	}
}

func TestCCDF_Errors(t *testing.T) {
	_, err := degree.CCDF(nil)
	assert.ErrorIs(t, err, degree.ErrEmptySequence)
	_, err = degree.CCDF([]int{3, -1})
	assert.ErrorIs(t, err, degree.ErrNegativeValue)

	// a zero in the data is itself the first point
	pts, err := degree.CCDF([]int{0, 2, 2})
	require.NoError(t, err)
	assert.Equal(t, []degree.Point{{0, 2.0 / 3}, {2, 0}}, pts)
}

func TestBiasedSample_StarRatio(t *testing.T) {
	g := mustBuild(t, nil, builder.Star(5))

	got, err := degree.BiasedSample(g, 10000, rng.New(42))
	require.NoError(t, err)
	require.Len(t, got, 10000)

	counts := make([]int, 5)
	for _, v := range got {
		counts[v]++
	}
	avgLeaf := float64(counts[1]+counts[2]+counts[3]+counts[4]) / 4
	ratio := float64(counts[0]) / avgLeaf
	assert.Greater(t, ratio, 3.0)
	assert.Less(t, ratio, 5.0)
}

func TestBiasedSample_RegularIsUniform(t *testing.T) {
	g := mustBuild(t, nil, builder.Complete(4))

	got, err := degree.BiasedSample(g, 8000, rng.New(42))
	require.NoError(t, err)

	counts := make([]int, 4)
	for _, v := range got {
		counts[v]++
	}
	for v, c := range counts {
		assert.InDelta(t, 2000, c, 200, "vertex %d", v)
	}
}

func TestBiasedSample_SkipsIsolated(t *testing.T) {
	// Path(3) plus two isolated vertices from Complete(1) blocks.
	g := mustBuild(t, nil, builder.Path(3), builder.Complete(1), builder.Complete(1))

	got, err := degree.BiasedSample(g, 2000, rng.New(7))
	require.NoError(t, err)
	for _, v := range got {
		assert.Less(t, v, 3, "isolated vertex %d sampled", v)
	}

	_, err = degree.BiasedSample(mustBuild(t, nil, builder.Complete(1)), 1, rng.New(1))
	assert.ErrorIs(t, err, degree.ErrNoEdges)
	_, err = degree.BiasedSample(g, 1, nil)
	assert.ErrorIs(t, err, degree.ErrNilRand)
	_, err = degree.BiasedSample(nil, 1, rng.New(1))
	assert.ErrorIs(t, err, degree.ErrGraphNil)
}

// TestFriendshipParadox: neighbours have more friends on average.
func TestFriendshipParadox(t *testing.T) {
	star := mustBuild(t, nil, builder.Star(5))
	assert.InDelta(t, 1.6, degree.MeanDegree(star), 1e-12)
	// (16 + 4·1) / 8
	assert.InDelta(t, 2.5, degree.MeanNeighborDegree(star), 1e-12)

	ba := mustBuild(t, []builder.BuilderOption{builder.WithSeed(1)}, builder.BarabasiAlbert(1000, 2))
	assert.Greater(t, degree.MeanNeighborDegree(ba), degree.MeanDegree(ba))

	cycle := mustBuild(t, nil, builder.Cycle(6))
	assert.InDelta(t, degree.MeanDegree(cycle), degree.MeanNeighborDegree(cycle), 1e-12)

	assert.Zero(t, degree.MeanDegree(nil))
	assert.Zero(t, degree.MeanNeighborDegree(mustBuild(t, nil, builder.Complete(1))))
}

func ExampleCCDF() {
	pts, _ := degree.CCDF([]int{1, 1, 1, 1, 4})
	for _, p := range pts {
		fmt.Printf("P(X>%d)=%.1f\n", p.X, p.P)
	}
	// Output:
	// P(X>0)=1.0
	// P(X>1)=0.2
	// P(X>4)=0.0
}
