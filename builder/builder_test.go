// Package builder_test contains functional tests for every Constructor,
// verifying topology, counts, composition, determinism and error sentinels.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rdsim/builder"
	"github.com/katalvlaran/rdsim/core"
)

// TestBuilders_Functional runs table-driven functional tests for each builder.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name:  "Star(5)",
			ctor:  builder.Star(5),
			wantV: 5, wantE: 4,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, []int{4, 1, 1, 1, 1}, g.Degrees())
			},
		},
		{
			name:  "Path(4)",
			ctor:  builder.Path(4),
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for i := 0; i < 3; i++ {
					assert.True(t, g.HasEdge(i, i+1), "missing %d-%d", i, i+1)
				}
			},
		},
		{
			name:  "Cycle(5)",
			ctor:  builder.Cycle(5),
			wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge(4, 0))
				for v := 0; v < 5; v++ {
					assert.Equal(t, 2, g.Degree(v))
				}
			},
		},
		{
			name:  "Complete(4)",
			ctor:  builder.Complete(4),
			wantV: 4, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge(0, 3))
				assert.True(t, g.HasEdge(1, 2))
			},
		},
		{
			name:  "RandomSparse(6,1)",
			ctor:  builder.RandomSparse(6, 1),
			wantV: 6, wantE: 15,
		},
		{
			name:  "RandomSparse(6,0)",
			ctor:  builder.RandomSparse(6, 0),
			wantV: 6, wantE: 0,
		},
		{
			name:  "BarabasiAlbert(3,2) forced",
			ctor:  builder.BarabasiAlbert(3, 2),
			wantV: 3, wantE: 3,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.Order())
			assert.Equal(t, tc.wantE, g.Size())
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

// TestBuildGraph_Composition checks that constructors append vertex blocks.
func TestBuildGraph_Composition(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Star(5), builder.Path(3))
	require.NoError(t, err)

	assert.Equal(t, 8, g.Order())
	assert.Equal(t, [][]int{{0, 1, 2, 3, 4}, {5, 6, 7}}, g.ConnectedComponents())
	assert.True(t, g.HasEdge(5, 6))
}

// TestBuilders_Errors asserts sentinel errors for invalid parameters.
func TestBuilders_Errors(t *testing.T) {
	tests := []struct {
		name string
		ctor builder.Constructor
		opts []builder.BuilderOption
		want error
	}{
		{"Star too small", builder.Star(1), nil, builder.ErrTooFewVertices},
		{"Path too small", builder.Path(1), nil, builder.ErrTooFewVertices},
		{"Cycle too small", builder.Cycle(2), nil, builder.ErrTooFewVertices},
		{"Complete zero", builder.Complete(0), nil, builder.ErrTooFewVertices},
		{"RandomSparse n", builder.RandomSparse(0, 0.5), nil, builder.ErrTooFewVertices},
		{"RandomSparse p<0", builder.RandomSparse(3, -0.1), nil, builder.ErrInvalidProbability},
		{"RandomSparse p>1", builder.RandomSparse(3, 1.1), nil, builder.ErrInvalidProbability},
		{"RandomSparse rng", builder.RandomSparse(3, 0.5), nil, builder.ErrNeedRandSource},
		{"BA n", builder.BarabasiAlbert(0, 2), nil, builder.ErrTooFewVertices},
		{"BA m", builder.BarabasiAlbert(10, 0), nil, builder.ErrTooFewVertices},
		{"BA rng", builder.BarabasiAlbert(10, 2), nil, builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(tc.opts, tc.ctor)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestBarabasiAlbert_Structure checks size, simplicity and hub formation.
func TestBarabasiAlbert_Structure(t *testing.T) {
	const n, m = 500, 2
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(42)}, builder.BarabasiAlbert(n, m))
	require.NoError(t, err)

	// vertex 1 adds one edge, every later vertex adds m.
	assert.Equal(t, n, g.Order())
	assert.Equal(t, 1+(n-2)*m, g.Size())

	maxDeg := 0
	for v := 0; v < n; v++ {
		d := g.Degree(v)
		assert.GreaterOrEqual(t, d, 1, "vertex %d isolated", v)
		maxDeg = max(maxDeg, d)
	}
	assert.Greater(t, maxDeg, 5*m, "preferential attachment should create hubs")
	assert.Len(t, g.ConnectedComponents(), 1)
}

// TestBuilders_Deterministic verifies identical graphs for identical seeds.
func TestBuilders_Deterministic(t *testing.T) {
	for _, ctor := range []func() builder.Constructor{
		func() builder.Constructor { return builder.BarabasiAlbert(200, 3) },
		func() builder.Constructor { return builder.RandomSparse(60, 0.1) },
	} {
		g1, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(7)}, ctor())
		require.NoError(t, err)
		g2, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(7)}, ctor())
		require.NoError(t, err)
		assert.Equal(t, g1.Edges(), g2.Edges())
	}
}

// TestWithRand_PanicsOnNil covers the option-constructor panic policy.
func TestWithRand_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
}
