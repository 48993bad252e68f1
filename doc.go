// Package flownet computes maximum flow and minimum cut on capacitated
// directed networks with integer-indexed vertices.
//
// The network is an arena of Edge records with per-vertex adjacency
// lists of arena indices; each arc is registered at both endpoints, so
// the residual graph is a derived, always-current view of the same
// records rather than a second synchronized structure. Residual
// capacity is Capacity−Flow when an arc is walked forward and Flow
// when it is walked in reverse.
//
// The augmenting-path engine is a two-state machine (running /
// terminated) with an injected path-selection strategy:
//
//   - BFS (default)
//
//   - Method: breadth-first search for shortest (fewest-arc)
//     augmenting paths — the Edmonds–Karp rule.
//
//   - Bound:  at most O(V·E) augmentations, independent of whether
//     capacities are integral; O(V·E²) time overall.
//
//   - DFS
//
//   - Method: depth-first search for any augmenting path — the
//     classical Ford–Fulkerson rule.
//
//   - Bound:  O(E·F) on integral networks (F = total flow); no
//     polynomial bound in general, and no termination guarantee on
//     adversarial irrational capacities. Pair with
//     Options.MaxIterations.
//
// # API
//
// Options configures every entry point:
//
//	opts := flownet.DefaultOptions()
//	// opts.Epsilon = 1e-9        residuals ≤ Epsilon are zero
//	// opts.Verbose = false       log each augmentation
//	// opts.MaxIterations = 0     0 = unbounded
//	// opts.Finder = flownet.BFS{}
//
// The usual flow is: build a Network with NewNetwork/AddEdge (or
// FromArcs), compute with MaxFlow (or an explicit Engine), then read
// the optimality certificate with MinCut:
//
//	n, _ := flownet.NewNetwork(4)
//	n.AddEdge(0, 1, 3)
//	n.AddEdge(0, 2, 2)
//	n.AddEdge(1, 3, 2)
//	n.AddEdge(2, 3, 3)
//
//	total, err := flownet.MaxFlow(n, 0, 3, flownet.DefaultOptions())
//	cut, err := flownet.MinCut(n, 0, flownet.DefaultOptions())
//	// total == cut.Value
//
// Solve bundles both into a Result for presentation layers.
//
// After a completed run the network holds the terminal residual state:
// MinCut's reachable set S (containing the source) and its complement
// T (containing the sink) form a partition whose crossing arcs are all
// saturated and sum to the flow value — the max-flow–min-cut theorem
// made testable.
//
// # Errors
//
//	ErrVertexCount        - network constructed with fewer than two vertices
//	ErrInvalidVertex      - vertex index outside [0, V)
//	ErrInvalidCapacity    - negative arc capacity
//	ErrInvalidEdge        - arc index outside [0, E)
//	ErrIllegalEndpoint    - vertex is not an endpoint of the arc
//	ErrSourceEqualsSink   - source and sink coincide
//	ErrInvariantViolation - augmentation would break 0 ≤ flow ≤ capacity
//	ErrIterationBudget    - MaxIterations reached with paths remaining
//	ErrNilNetwork         - nil *Network
//
// An unreachable sink is not an error: the engine terminates with
// flow 0 and MinCut reports S = {source-reachable vertices}.
//
// # Concurrency
//
// All computation is single-threaded and synchronous. A single Engine
// exclusively owns flow mutation for the duration of Run; no other
// goroutine may read or write edge flow while Run is in progress.
package flownet
