package flownet_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flownet"
)

// Property oracles shared by the suites: rather than hard-coding every
// expected flow, terminal networks are verified against the theorems
// themselves (feasibility, conservation, absence of augmenting paths,
// max-flow == min-cut).

// assertFeasible checks 0 ≤ flow ≤ capacity on every arc.
func assertFeasible(t *testing.T, n *flownet.Network) {
	t.Helper()
	for i, e := range n.Edges() {
		require.GreaterOrEqual(t, e.Flow, 0.0, "edge %d carries negative flow: %v", i, e)
		require.LessOrEqual(t, e.Flow, e.Capacity, "edge %d exceeds capacity: %v", i, e)
	}
}

// assertConserved checks inflow == outflow at every vertex other than
// source and sink.
func assertConserved(t *testing.T, n *flownet.Network, source, sink int) {
	t.Helper()
	balance := make([]float64, n.NumVertices())
	for _, e := range n.Edges() {
		balance[e.From] -= e.Flow
		balance[e.To] += e.Flow
	}
	for v, d := range balance {
		if v == source || v == sink {
			continue
		}
		require.InDelta(t, 0, d, 1e-9, "vertex %d violates conservation by %g", v, d)
	}
}

// assertMaximum checks that no augmenting path remains in the terminal
// residual state, the certificate that the computed flow is maximum.
func assertMaximum(t *testing.T, n *flownet.Network, source, sink int) {
	t.Helper()
	_, ok := flownet.BFS{}.FindPath(n, source, sink, flownet.DefaultEpsilon)
	require.False(t, ok, "terminal network still has an augmenting path")
}

// assertTerminal bundles the three oracles plus the max-flow–min-cut
// equality for a network on which Run has completed.
func assertTerminal(t *testing.T, n *flownet.Network, source, sink int, total float64) {
	t.Helper()
	assertFeasible(t, n)
	assertConserved(t, n, source, sink)
	assertMaximum(t, n, source, sink)

	cut, err := flownet.MinCut(n, source, flownet.DefaultOptions())
	require.NoError(t, err)
	require.InDelta(t, total, cut.Value, 1e-9, "max flow must equal min cut")
	for _, e := range cut.Edges {
		require.InDelta(t, e.Capacity, e.Flow, 1e-9, "cut edge %v must be saturated", e)
	}
}

// diamond builds the four-vertex two-path network used across suites:
// 0→1 (3), 0→2 (2), 1→3 (2), 2→3 (3); max flow from 0 to 3 is 4.
func diamond(t *testing.T) *flownet.Network {
	t.Helper()
	n, err := flownet.FromArcs(4, []flownet.Arc{
		{From: 0, To: 1, Capacity: 3},
		{From: 0, To: 2, Capacity: 2},
		{From: 1, To: 3, Capacity: 2},
		{From: 2, To: 3, Capacity: 3},
	})
	require.NoError(t, err)
	return n
}
