package flownet

// Step records one traversal of an arc during residual-graph search:
// Edge is the arena index, From the vertex the traversal leaves, and
// To the vertex it reaches. When an arc is traversed in reverse
// (residual direction), From equals the arc's head and To its tail.
type Step struct {
	Edge int
	From int
	To   int
}

// PathFinder locates an augmenting path in the current residual state
// of a network. Implementations must not mutate the network.
type PathFinder interface {
	// FindPath returns an ordered sequence of steps forming a simple
	// path from source to sink in which every step has residual
	// capacity strictly greater than eps, or ok=false when no such
	// path exists.
	FindPath(n *Network, source, sink int, eps float64) (path []Step, ok bool)
}

// BFS finds shortest (fewest-arc) augmenting paths via breadth-first
// search. It is the default strategy: shortest-path selection bounds
// the total number of augmentations by O(V·E) (the Edmonds–Karp
// guarantee), so termination does not depend on capacities being
// integral.
type BFS struct{}

// FindPath explores the residual graph level by level from source,
// recording per vertex the step used to reach it, and stops as soon as
// the sink is labelled. The path is rebuilt by walking back-pointers
// from sink to source.
//
// Complexity: O(V + E) per search.
func (BFS) FindPath(n *Network, source, sink int, eps float64) ([]Step, bool) {
	visited, back := searchState(n.NumVertices())
	visited[source] = true

	queue := []int{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, st := range n.Incident(u, eps) {
			if visited[st.To] {
				continue
			}
			visited[st.To] = true
			back[st.To] = st
			if st.To == sink {
				return rebuild(back, source, sink), true
			}
			queue = append(queue, st.To)
		}
	}
	return nil, false
}

// DFS finds augmenting paths depth-first, matching the classical
// Ford–Fulkerson method. Unlike BFS it carries no polynomial bound on
// the number of augmentations, and on adversarial irrational
// capacities the augmenting loop may fail to terminate at all; pair it
// with Options.MaxIterations when the input is not known to be
// integral.
type DFS struct{}

// FindPath runs an iterative depth-first search over the residual
// graph with the same visited-set and back-pointer discipline as BFS.
func (DFS) FindPath(n *Network, source, sink int, eps float64) ([]Step, bool) {
	visited, back := searchState(n.NumVertices())
	visited[source] = true

	stack := []int{source}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, st := range n.Incident(u, eps) {
			if visited[st.To] {
				continue
			}
			visited[st.To] = true
			back[st.To] = st
			if st.To == sink {
				return rebuild(back, source, sink), true
			}
			stack = append(stack, st.To)
		}
	}
	return nil, false
}

// searchState allocates fresh visited flags and back-pointers for one
// search; stale state is never reused across searches.
func searchState(vertices int) ([]bool, []Step) {
	visited := make([]bool, vertices)
	back := make([]Step, vertices)
	for i := range back {
		back[i].Edge = -1
	}
	return visited, back
}

// rebuild walks the back-pointers from sink to source and reverses the
// collected steps into source→sink order.
func rebuild(back []Step, source, sink int) []Step {
	var path []Step
	for v := sink; v != source; v = back[v].From {
		path = append(path, back[v])
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
