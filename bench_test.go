package flownet_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/flownet"
)

// buildRandomNetwork constructs a network with V vertices and roughly
// p probability of an arc between any ordered pair u→v. Capacities are
// uniform in [1, maxCap].
func buildRandomNetwork(b *testing.B, V int, p float64, maxCap float64, seed int64) *flownet.Network {
	b.Helper()
	r := rand.New(rand.NewSource(seed)) // deterministic seed for reproducibility
	n, err := flownet.NewNetwork(V)
	if err != nil {
		b.Fatal(err)
	}
	for u := 0; u < V; u++ {
		for v := 0; v < V; v++ {
			if u == v {
				continue // skip self-loops
			}
			if r.Float64() < p {
				if _, err = n.AddEdge(u, v, r.Float64()*maxCap+1.0); err != nil {
					b.Fatal(err)
				}
			}
		}
	}
	return n
}

// BenchmarkMaxFlow measures the BFS (Edmonds–Karp) and DFS
// (Ford–Fulkerson) strategies on networks of increasing size and
// density. The network is reset between iterations so each run starts
// from zero flow.
func BenchmarkMaxFlow(b *testing.B) {
	cases := []struct {
		name   string
		V      int
		p      float64
		maxCap float64
		seed   int64
	}{
		{"Small", 200, 0.05, 10.0, 42},
		{"Medium", 500, 0.02, 20.0, 4242},
		{"Large", 1000, 0.01, 50.0, 424242},
	}

	for _, tc := range cases {
		tc := tc
		b.Run(tc.name, func(b *testing.B) {
			n := buildRandomNetwork(b, tc.V, tc.p, tc.maxCap, tc.seed)
			source, sink := 0, tc.V-1

			b.Run("BFS", func(b *testing.B) {
				opts := flownet.DefaultOptions()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					n.Reset()
					_, _ = flownet.MaxFlow(n, source, sink, opts)
				}
			})

			b.Run("DFS", func(b *testing.B) {
				opts := flownet.DefaultOptions()
				opts.Finder = flownet.DFS{}
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					n.Reset()
					_, _ = flownet.MaxFlow(n, source, sink, opts)
				}
			})
		})
	}
}
