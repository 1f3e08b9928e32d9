package network

// The named example networks below reproduce the worked examples the
// original demo shipped with. They are exported so both cmd/pnsim and
// the test suites in algorithms/... can refer to them by name.
var (
	// BPNetwork1 is a small even/odd-bipartite network: vertex 1
	// (Black) has three White neighbors {0, 2, 4}; vertex 2 (White)
	// has three Black neighbors {1, 3, 5}.
	BPNetwork1 = []EdgePair{{0, 1}, {2, 1}, {4, 1}, {3, 2}, {5, 2}}

	// Cycle4 is the 4-cycle 0-1-2-3-0, bipartite on even/odd indices.
	// BMM over it admits a perfect matching of two non-adjacent edges.
	Cycle4 = []EdgePair{{0, 1}, {1, 2}, {2, 3}, {0, 3}}

	// Network2 is a 9-vertex, non-bipartite network used to exercise
	// the MVC-3 double cover.
	Network2 = []EdgePair{
		{0, 1}, {0, 2}, {1, 3}, {2, 3}, {2, 4}, {3, 4},
		{1, 5}, {4, 5}, {4, 6}, {5, 6}, {6, 7}, {6, 8},
	}

	// Cycle6 is the 6-cycle, 2-regular; Isomorphic Neighborhood at
	// depth 5 over it yields the value sequence 2, 4, 8, 16, 32, 64.
	Cycle6 = []EdgePair{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 0}}
)
