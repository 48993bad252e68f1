package flownet

import "fmt"

// Network is a capacitated directed multigraph over vertices indexed
// in [0, V). Edges live in a single arena slice; each vertex's
// adjacency list holds indices into that arena, with every arc
// registered at both endpoints so that residual-graph traversal can
// walk an arc forward from its tail or in reverse from its head.
type Network struct {
	edges []Edge
	adj   [][]int
}

// NewNetwork allocates an empty network with the given vertex count.
// Returns ErrVertexCount when vertices < 2.
func NewNetwork(vertices int) (*Network, error) {
	if vertices < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrVertexCount, vertices)
	}
	return &Network{adj: make([][]int, vertices)}, nil
}

// Arc is one (from, to, capacity) triple as consumed from graph
// construction.
type Arc struct {
	From, To int
	Capacity float64
}

// FromArcs builds a network from a vertex count and a sequence of
// arcs, failing on the first invalid arc.
func FromArcs(vertices int, arcs []Arc) (*Network, error) {
	n, err := NewNetwork(vertices)
	if err != nil {
		return nil, err
	}
	for _, a := range arcs {
		if _, err = n.AddEdge(a.From, a.To, a.Capacity); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// NumVertices returns the vertex count V.
func (n *Network) NumVertices() int { return len(n.adj) }

// NumEdges returns the number of original arcs added so far.
func (n *Network) NumEdges() int { return len(n.edges) }

// AddEdge appends one arc from→to with the given capacity and returns
// its arena index. The arc is registered in both endpoints' adjacency
// lists (forward at from, residual-reverse at to). Parallel arcs are
// stored independently. Returns ErrInvalidVertex on an out-of-range
// endpoint or ErrInvalidCapacity on a negative capacity; on error the
// arc is not added.
func (n *Network) AddEdge(from, to int, capacity float64) (int, error) {
	if from < 0 || from >= len(n.adj) {
		return 0, fmt.Errorf("%w: from=%d, want [0,%d)", ErrInvalidVertex, from, len(n.adj))
	}
	if to < 0 || to >= len(n.adj) {
		return 0, fmt.Errorf("%w: to=%d, want [0,%d)", ErrInvalidVertex, to, len(n.adj))
	}
	if capacity < 0 {
		return 0, fmt.Errorf("%w: %g on edge %d→%d", ErrInvalidCapacity, capacity, from, to)
	}
	idx := len(n.edges)
	n.edges = append(n.edges, Edge{From: from, To: to, Capacity: capacity})
	n.adj[from] = append(n.adj[from], idx)
	if to != from {
		n.adj[to] = append(n.adj[to], idx)
	}
	return idx, nil
}

// Edge returns a copy of the arc at arena index i.
func (n *Network) Edge(i int) (Edge, error) {
	if i < 0 || i >= len(n.edges) {
		return Edge{}, fmt.Errorf("%w: index %d, want [0,%d)", ErrInvalidEdge, i, len(n.edges))
	}
	return n.edges[i], nil
}

// Edges returns copies of all original arcs in insertion order.
func (n *Network) Edges() []Edge {
	out := make([]Edge, len(n.edges))
	copy(out, n.edges)
	return out
}

// Residual returns the residual capacity of the arc at index edge when
// traversed starting at vertex from.
func (n *Network) Residual(edge, from int) (float64, error) {
	if edge < 0 || edge >= len(n.edges) {
		return 0, fmt.Errorf("%w: index %d, want [0,%d)", ErrInvalidEdge, edge, len(n.edges))
	}
	return n.edges[edge].Residual(from)
}

// Augment pushes amount across the arc at index edge, traversed from
// vertex from: flow increases in the forward direction and decreases
// in reverse. Returns ErrInvariantViolation when amount is negative or
// exceeds the arc's residual capacity in that direction; the flow is
// never clamped, since a violation signals a bug in the caller.
func (n *Network) Augment(edge, from int, amount float64) error {
	if edge < 0 || edge >= len(n.edges) {
		return fmt.Errorf("%w: index %d, want [0,%d)", ErrInvalidEdge, edge, len(n.edges))
	}
	e := &n.edges[edge]
	avail, err := e.Residual(from)
	if err != nil {
		return err
	}
	if amount < 0 {
		return fmt.Errorf("%w: negative augmentation %g on %v", ErrInvariantViolation, amount, *e)
	}
	if amount > avail {
		return fmt.Errorf("%w: augmentation %g exceeds residual %g on %v", ErrInvariantViolation, amount, avail, *e)
	}
	if from == e.From {
		e.Flow += amount
	} else {
		e.Flow -= amount
	}
	return nil
}

// Incident returns the steps leaving v whose residual capacity is
// strictly greater than eps — the path finders' only view of the
// residual graph. Self-loops are skipped; they can never lie on a
// simple augmenting path. An out-of-range v yields no steps.
func (n *Network) Incident(v int, eps float64) []Step {
	if v < 0 || v >= len(n.adj) {
		return nil
	}
	steps := make([]Step, 0, len(n.adj[v]))
	for _, idx := range n.adj[v] {
		e := n.edges[idx]
		if e.From == e.To {
			continue
		}
		if e.residualFrom(v) <= eps {
			continue
		}
		other := e.To
		if v == e.To {
			other = e.From
		}
		steps = append(steps, Step{Edge: idx, From: v, To: other})
	}
	return steps
}

// Reset zeroes the flow on every arc so the network can be solved
// again from scratch.
func (n *Network) Reset() {
	for i := range n.edges {
		n.edges[i].Flow = 0
	}
}
