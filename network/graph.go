package network

import "fmt"

// EdgePair is an unordered pair of vertex indices, as given in the input
// edge list. U and V need not be ordered; Build normalizes.
type EdgePair struct {
	U, V int
}

// Topology is a simple undirected graph with a deterministic, stable
// per-vertex port numbering: port i (1-based) at vertex v is the i-th
// edge incident to v in the order edges were inserted. Two endpoints of
// the same edge consistently agree on which edge they share, but may
// (and in general will) disagree on its local port number.
type Topology struct {
	n     int
	edges []EdgePair // normalized so U < V; index is the edge id
	ports [][]int    // ports[v][i] is the edge id at port i+1 of vertex v
}

// Build derives a Topology from an edge list. N = 1 + the largest vertex
// index referenced. Build rejects an empty list (ErrNoEdges) and any
// self-loop or duplicate edge (ErrNotSimple), since the PN model assumes
// a simple graph throughout.
func Build(edgeList []EdgePair) (*Topology, error) {
	if len(edgeList) == 0 {
		return nil, ErrNoEdges
	}

	n := 0
	for _, e := range edgeList {
		if e.U+1 > n {
			n = e.U + 1
		}
		if e.V+1 > n {
			n = e.V + 1
		}
	}

	t := &Topology{
		n:     n,
		edges: make([]EdgePair, 0, len(edgeList)),
		ports: make([][]int, n),
	}

	seen := make([]map[int]bool, n)
	for i := range seen {
		seen[i] = make(map[int]bool)
	}

	for _, e := range edgeList {
		u, v := e.U, e.V
		if u == v {
			return nil, fmt.Errorf("network: self-loop at vertex %d: %w", u, ErrNotSimple)
		}
		if u > v {
			u, v = v, u
		}
		if seen[u][v] {
			return nil, fmt.Errorf("network: duplicate edge (%d, %d): %w", u, v, ErrNotSimple)
		}
		seen[u][v] = true

		id := len(t.edges)
		t.edges = append(t.edges, EdgePair{U: u, V: v})
		t.ports[u] = append(t.ports[u], id)
		t.ports[v] = append(t.ports[v], id)
	}

	return t, nil
}

// N returns the vertex count.
func (t *Topology) N() int { return t.n }

// EdgeCount returns the edge count.
func (t *Topology) EdgeCount() int { return len(t.edges) }

// Degree returns deg(v), the number of ports at vertex v.
func (t *Topology) Degree(v int) int { return len(t.ports[v]) }

// Edges returns the normalized (U<V) edge list, indexed by edge id.
func (t *Topology) Edges() []EdgePair {
	out := make([]EdgePair, len(t.edges))
	copy(out, t.edges)
	return out
}

// EdgeEndpoints returns the normalized (U<V) endpoints of the given edge
// id, as assigned by Build.
func (t *Topology) EdgeEndpoints(edgeID int) EdgePair { return t.edges[edgeID] }

// EdgeAt returns the edge id and the peer vertex reachable from v at the
// given 1-based port. Port must be in [1, Degree(v)].
func (t *Topology) EdgeAt(v, port int) (edgeID, peer int) {
	edgeID = t.ports[v][port-1]
	e := t.edges[edgeID]
	if e.U == v {
		return edgeID, e.V
	}
	return edgeID, e.U
}

// PortOf returns the 1-based port number at vertex v for the given edge
// id. It panics if the edge is not incident to v, which would indicate
// an inconsistent Topology.
func (t *Topology) PortOf(v, edgeID int) int {
	for i, id := range t.ports[v] {
		if id == edgeID {
			return i + 1
		}
	}
	panic(fmt.Sprintf("network: edge %d not incident to vertex %d", edgeID, v))
}
