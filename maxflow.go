package flownet

import (
	"fmt"
	"math"
)

// State reports whether an Engine is still augmenting or has proved
// optimality.
type State uint8

const (
	// StateRunning means Run has not yet exhausted augmenting paths.
	StateRunning State = iota

	// StateTerminated means no augmenting path remains: the computed
	// flow is maximum and the terminal residual state certifies a
	// minimum cut (max-flow–min-cut theorem).
	StateTerminated
)

// Engine drives repeated augmenting-path search and flow augmentation
// over one network until no augmenting path remains. For the duration
// of Run the engine exclusively owns mutation of the network's flow;
// it is not safe for concurrent use.
type Engine struct {
	net    *Network
	source int
	sink   int
	opts   Options
	state  State
	total  float64
	rounds int
}

// NewEngine validates the endpoints and prepares an engine in
// StateRunning. Returns ErrNilNetwork, ErrInvalidVertex, or
// ErrSourceEqualsSink before any computation happens.
func NewEngine(n *Network, source, sink int, opts Options) (*Engine, error) {
	if n == nil {
		return nil, ErrNilNetwork
	}
	if source < 0 || source >= n.NumVertices() {
		return nil, fmt.Errorf("%w: source=%d, want [0,%d)", ErrInvalidVertex, source, n.NumVertices())
	}
	if sink < 0 || sink >= n.NumVertices() {
		return nil, fmt.Errorf("%w: sink=%d, want [0,%d)", ErrInvalidVertex, sink, n.NumVertices())
	}
	if source == sink {
		return nil, fmt.Errorf("%w: vertex %d", ErrSourceEqualsSink, source)
	}
	opts.normalize()

	return &Engine{net: n, source: source, sink: sink, opts: opts, state: StateRunning}, nil
}

// Run augments until no path with positive residual capacity remains,
// then transitions to StateTerminated and returns the total flow. An
// unreachable sink is a valid terminal state with total flow 0, not an
// error. When Options.MaxIterations is set and exhausted while paths
// still remain, Run returns the partial total together with
// ErrIterationBudget; calling Run again resumes nothing and reports
// the same outcome.
//
// Each iteration: find a path, take the bottleneck (minimum residual
// capacity over the path's steps), augment every step by exactly the
// bottleneck, and accumulate it. Augmentation along one path is
// applied atomically with respect to the search, so flow conservation
// holds at every vertex other than source and sink between iterations.
func (e *Engine) Run() (float64, error) {
	for e.state == StateRunning {
		path, ok := e.opts.Finder.FindPath(e.net, e.source, e.sink, e.opts.Epsilon)
		if !ok {
			e.state = StateTerminated
			break
		}
		if e.opts.MaxIterations > 0 && e.rounds >= e.opts.MaxIterations {
			return e.total, fmt.Errorf("%w: %d augmentations applied, paths remain", ErrIterationBudget, e.rounds)
		}

		bottle := math.Inf(1)
		for _, st := range path {
			r, err := e.net.Residual(st.Edge, st.From)
			if err != nil {
				return e.total, err
			}
			if r < bottle {
				bottle = r
			}
		}
		for _, st := range path {
			if err := e.net.Augment(st.Edge, st.From, bottle); err != nil {
				return e.total, err
			}
		}
		e.total += bottle
		e.rounds++

		if e.opts.Verbose {
			fmt.Printf("flownet: augmenting path %v with flow %g (total %g)\n", pathVertices(path), bottle, e.total)
		}
	}
	return e.total, nil
}

// Value returns the flow accumulated so far.
func (e *Engine) Value() float64 { return e.total }

// Augmentations returns the number of augmenting paths applied so far.
func (e *Engine) Augmentations() int { return e.rounds }

// State returns StateRunning until no augmenting path remains.
func (e *Engine) State() State { return e.state }

// pathVertices renders a path as its vertex sequence for logging.
func pathVertices(path []Step) []int {
	if len(path) == 0 {
		return nil
	}
	out := make([]int, 0, len(path)+1)
	out = append(out, path[0].From)
	for _, st := range path {
		out = append(out, st.To)
	}
	return out
}

// MaxFlow computes the maximum flow from source to sink in n, leaving
// n in its terminal residual state for MinCut. It is the one-call
// form of NewEngine + Run.
//
// Complexity with the default BFS finder: O(V·E²) time, O(V + E)
// memory.
func MaxFlow(n *Network, source, sink int, opts Options) (float64, error) {
	eng, err := NewEngine(n, source, sink, opts)
	if err != nil {
		return 0, err
	}
	return eng.Run()
}

// Result bundles the outputs handed to presentation layers: the flow
// value plus the certifying cut and partition.
type Result struct {
	MaxFlow float64
	Cut     Cut
}

// Solve runs MaxFlow and then MinCut on the terminal network. On a
// MaxFlow error the partial flow is still reported in the result.
func Solve(n *Network, source, sink int, opts Options) (Result, error) {
	total, err := MaxFlow(n, source, sink, opts)
	if err != nil {
		return Result{MaxFlow: total}, err
	}
	cut, err := MinCut(n, source, opts)
	if err != nil {
		return Result{MaxFlow: total}, err
	}
	return Result{MaxFlow: total, Cut: cut}, nil
}
