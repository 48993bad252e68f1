package flownet_test

import (
	"fmt"

	"github.com/katalvlaran/flownet"
)

// ExampleMaxFlow demonstrates max-flow on a two-path network.
// Graph:
//
//	0→1(3)→3, with 1→3 capped at 2
//	0→2(2)→3
//
// Expected flow: 2 via each branch ⇒ 4
func ExampleMaxFlow() {
	n, _ := flownet.NewNetwork(4)
	n.AddEdge(0, 1, 3)
	n.AddEdge(0, 2, 2)
	n.AddEdge(1, 3, 2)
	n.AddEdge(2, 3, 3)

	total, _ := flownet.MaxFlow(n, 0, 3, flownet.DefaultOptions())
	fmt.Println(total)
	// Output:
	// 4
}

// ExampleSolve demonstrates the bundled result on a single-edge
// network: the flow value and the saturated cut arc.
func ExampleSolve() {
	n, _ := flownet.FromArcs(2, []flownet.Arc{
		{From: 0, To: 1, Capacity: 7},
	})

	res, _ := flownet.Solve(n, 0, 1, flownet.DefaultOptions())
	fmt.Println(res.MaxFlow)
	fmt.Println(res.Cut.Edges[0])
	// Output:
	// 7
	// (0 -(7/7)-> 1)
}

// ExampleMinCut shows the vertex partition certifying optimality.
func ExampleMinCut() {
	n, _ := flownet.NewNetwork(4)
	n.AddEdge(0, 1, 3)
	n.AddEdge(0, 2, 2)
	n.AddEdge(1, 3, 2)
	n.AddEdge(2, 3, 3)

	flownet.MaxFlow(n, 0, 3, flownet.DefaultOptions())
	cut, _ := flownet.MinCut(n, 0, flownet.DefaultOptions())
	fmt.Println(cut.SourceSide, cut.SinkSide, cut.Value)
	// Output:
	// [0 1] [2 3] 4
}
