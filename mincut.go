package flownet

import "fmt"

// Cut is a partition of a network's vertices into a source side and a
// sink side, together with the original arcs crossing from source side
// to sink side and the sum of their capacities. A Cut is a snapshot of
// the residual state it was extracted from; it is not kept current if
// the network is mutated afterwards.
type Cut struct {
	SourceSide []int
	SinkSide   []int
	Edges      []Edge
	Value      float64
}

// MinCut partitions the vertices of n by residual reachability from
// source: the source side is everything reachable through residual
// capacity > Epsilon, the sink side is the rest. On the terminal state
// left by a completed Run, the sink is unreachable, every crossing arc
// is saturated, and Value equals the maximum flow — the
// max-flow–min-cut certificate.
//
// The extraction is a pure read: vertex sides are listed in ascending
// order and crossing arcs in arena order, so repeated calls on the
// same state yield identical cuts.
//
// Complexity: O(V + E) time, O(V) memory.
func MinCut(n *Network, source int, opts Options) (Cut, error) {
	if n == nil {
		return Cut{}, ErrNilNetwork
	}
	if source < 0 || source >= n.NumVertices() {
		return Cut{}, fmt.Errorf("%w: source=%d, want [0,%d)", ErrInvalidVertex, source, n.NumVertices())
	}
	opts.normalize()

	marked := make([]bool, n.NumVertices())
	marked[source] = true
	queue := []int{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, st := range n.Incident(u, opts.Epsilon) {
			if marked[st.To] {
				continue
			}
			marked[st.To] = true
			queue = append(queue, st.To)
		}
	}

	var cut Cut
	for v, m := range marked {
		if m {
			cut.SourceSide = append(cut.SourceSide, v)
		} else {
			cut.SinkSide = append(cut.SinkSide, v)
		}
	}
	for _, e := range n.edges {
		if marked[e.From] && !marked[e.To] {
			cut.Edges = append(cut.Edges, e)
			cut.Value += e.Capacity
		}
	}
	return cut, nil
}
