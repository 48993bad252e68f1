package flownet

import "errors"

// Sentinel errors returned by the flownet package.
var (
	// ErrNilNetwork indicates that a nil *Network was passed in.
	ErrNilNetwork = errors.New("flownet: network is nil")

	// ErrVertexCount indicates that a network was requested with fewer
	// than two vertices; a flow problem needs distinct source and sink.
	ErrVertexCount = errors.New("flownet: network needs at least two vertices")

	// ErrInvalidVertex indicates a vertex index outside [0, V).
	ErrInvalidVertex = errors.New("flownet: vertex index out of range")

	// ErrInvalidCapacity indicates an edge with negative capacity.
	ErrInvalidCapacity = errors.New("flownet: negative edge capacity")

	// ErrInvalidEdge indicates an edge index outside [0, E).
	ErrInvalidEdge = errors.New("flownet: edge index out of range")

	// ErrIllegalEndpoint indicates that a vertex handed to an edge
	// operation is neither endpoint of that edge.
	ErrIllegalEndpoint = errors.New("flownet: vertex is not an endpoint of the edge")

	// ErrSourceEqualsSink indicates that the same vertex was given as
	// both source and sink.
	ErrSourceEqualsSink = errors.New("flownet: source and sink must differ")

	// ErrInvariantViolation indicates that an augmentation would break
	// flow feasibility (0 ≤ flow ≤ capacity). It signals a bug in the
	// caller, never a malformed input, and is never silently clamped.
	ErrInvariantViolation = errors.New("flownet: flow feasibility invariant violated")

	// ErrIterationBudget indicates that Options.MaxIterations
	// augmentations were applied while augmenting paths still remain.
	// The partial flow accumulated so far is still reported.
	ErrIterationBudget = errors.New("flownet: augmentation budget exhausted")
)

// DefaultEpsilon is the tolerance below which residual capacities are
// treated as zero.
const DefaultEpsilon = 1e-9

// Options configures Engine, MaxFlow, Solve, and MinCut.
//   - Epsilon: residual capacities ≤ Epsilon are treated as zero
//     (default 1e-9). Gives float networks a termination floor.
//   - Verbose: if true, log each augmentation via fmt.Printf.
//   - MaxIterations: cap on augmentations; 0 means unbounded. When the
//     cap is hit with paths remaining, Run fails with ErrIterationBudget.
//   - Finder: augmenting-path strategy; nil selects BFS (Edmonds–Karp).
type Options struct {
	Epsilon       float64
	Verbose       bool
	MaxIterations int
	Finder        PathFinder
}

// DefaultOptions returns production-safe defaults: breadth-first path
// selection, Epsilon 1e-9, no iteration cap, no logging.
func DefaultOptions() Options {
	return Options{Epsilon: DefaultEpsilon, Finder: BFS{}}
}

// normalize fills in zero-valued fields with their defaults.
func (o *Options) normalize() {
	if o.Epsilon <= 0 {
		o.Epsilon = DefaultEpsilon
	}
	if o.Finder == nil {
		o.Finder = BFS{}
	}
	if o.MaxIterations < 0 {
		o.MaxIterations = 0
	}
}
