package topology_test

import (
	"testing"

	"github.com/katalvlaran/distopt/topology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// triangle returns the 3-cycle 0-1-2 with a pendant vertex 3 on node 2.
func triangle(t *testing.T) *topology.Graph {
	t.Helper()
	g, err := topology.NewGraph(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 0))
	require.NoError(t, g.AddEdge(2, 3))

	return g
}

// TestBuild_HalfArcCount: half mode emits exactly E arcs, min→max oriented,
// indexed contiguously in edge-enumeration order.
func TestBuild_HalfArcCount(t *testing.T) {
	g := triangle(t)
	d, err := topology.Build(g, topology.ModeHalf)
	require.NoError(t, err)

	assert.Equal(t, g.M(), d.NumArcs())
	for idx := 0; idx < d.NumArcs(); idx++ {
		a, err := d.Arc(idx)
		require.NoError(t, err)
		assert.Less(t, a.From, a.To, "half-mode arcs are oriented low→high")
	}
	// Enumeration order: {0,1}, {1,2}, {2,0}→(0,2), {2,3}.
	a0, _ := d.Arc(0)
	a2, _ := d.Arc(2)
	assert.Equal(t, topology.Arc{From: 0, To: 1}, a0)
	assert.Equal(t, topology.Arc{From: 0, To: 2}, a2)
}

// TestBuild_FullArcCount: full mode emits exactly 2E arcs with mutual
// reciprocal indices.
func TestBuild_FullArcCount(t *testing.T) {
	g := triangle(t)
	d, err := topology.Build(g, topology.ModeFull)
	require.NoError(t, err)

	assert.Equal(t, 2*g.M(), d.NumArcs())
	for idx := 0; idx < d.NumArcs(); idx++ {
		r, err := d.Recip(idx)
		require.NoError(t, err)
		rr, err := d.Recip(r)
		require.NoError(t, err)
		assert.Equal(t, idx, rr, "reciprocal pairing must be an involution")

		a, _ := d.Arc(idx)
		b, _ := d.Arc(r)
		assert.Equal(t, a.From, b.To)
		assert.Equal(t, a.To, b.From)
	}
}

// TestBuild_IndexBijection: the (from,to)→index map covers exactly the
// contiguous range 0..NumArcs-1 with no repeats, in both modes.
func TestBuild_IndexBijection(t *testing.T) {
	g := triangle(t)
	for _, mode := range []topology.Mode{topology.ModeHalf, topology.ModeFull} {
		d, err := topology.Build(g, mode)
		require.NoError(t, err)

		hit := make([]bool, d.NumArcs())
		for idx := 0; idx < d.NumArcs(); idx++ {
			a, err := d.Arc(idx)
			require.NoError(t, err)
			got, err := d.ArcIndex(a.From, a.To)
			require.NoError(t, err)
			assert.Equal(t, idx, got, "mode %s: ArcIndex must invert Arc", mode)
			assert.False(t, hit[got], "mode %s: index %d assigned twice", mode, got)
			hit[got] = true
		}
	}
}

// TestBuild_OutInConsistency: every arc index appears in exactly one Out
// list and one In list, matching its endpoints.
func TestBuild_OutInConsistency(t *testing.T) {
	g := triangle(t)
	d, err := topology.Build(g, topology.ModeFull)
	require.NoError(t, err)

	seenOut := make([]int, d.NumArcs())
	for u := 0; u < g.N(); u++ {
		out, err := d.Out(u)
		require.NoError(t, err)
		for _, idx := range out {
			a, _ := d.Arc(idx)
			assert.Equal(t, u, a.From)
			seenOut[idx]++
		}
		in, err := d.In(u)
		require.NoError(t, err)
		for _, idx := range in {
			a, _ := d.Arc(idx)
			assert.Equal(t, u, a.To)
		}
	}
	for idx, c := range seenOut {
		assert.Equal(t, 1, c, "arc %d must appear in exactly one Out list", idx)
	}
}

// TestBuild_Validation covers nil graph, unknown mode, and lookups that
// cannot resolve.
func TestBuild_Validation(t *testing.T) {
	_, err := topology.Build(nil, topology.ModeHalf)
	assert.ErrorIs(t, err, topology.ErrNilGraph)

	g := triangle(t)
	_, err = topology.Build(g, topology.Mode(99))
	assert.ErrorIs(t, err, topology.ErrUnknownMode)

	d, err := topology.Build(g, topology.ModeHalf)
	require.NoError(t, err)

	_, err = d.Arc(-1)
	assert.ErrorIs(t, err, topology.ErrArcNotFound)
	_, err = d.ArcIndex(3, 0)
	assert.ErrorIs(t, err, topology.ErrArcNotFound)
	_, err = d.ArcIndex(99, 0)
	assert.ErrorIs(t, err, topology.ErrVertexOutOfRange)
	_, err = d.Recip(0)
	assert.ErrorIs(t, err, topology.ErrUnknownMode, "half mode has no reciprocal pairs")
}

// TestBuild_HalfDirectionLookup: in half mode only the canonical low→high
// orientation resolves.
func TestBuild_HalfDirectionLookup(t *testing.T) {
	g := triangle(t)
	d, err := topology.Build(g, topology.ModeHalf)
	require.NoError(t, err)

	idx, err := d.ArcIndex(1, 2)
	require.NoError(t, err)
	a, _ := d.Arc(idx)
	assert.Equal(t, topology.Arc{From: 1, To: 2}, a)

	_, err = d.ArcIndex(2, 1)
	assert.ErrorIs(t, err, topology.ErrArcNotFound)
}
