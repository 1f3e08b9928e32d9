package dotprint

import (
	"fmt"
	"io"
	"strconv"

	"github.com/emicklei/dot"

	"github.com/twelho/pnsim/network"
)

// Write renders topo as an undirected Graphviz DOT graph, labelling
// vertex i with fmt.Sprintf("%v", states[i]) and each edge with the port
// number it holds at its tail and head vertex.
func Write[T any](w io.Writer, topo *network.Topology, states []T) error {
	if len(states) != topo.N() {
		return fmt.Errorf("dotprint: %d states for a %d-vertex network", len(states), topo.N())
	}

	g := dot.NewGraph(dot.Undirected)
	nodes := make([]dot.Node, topo.N())
	for v := 0; v < topo.N(); v++ {
		nodes[v] = g.Node(strconv.Itoa(v)).Attr("label", fmt.Sprintf("%v", states[v]))
	}

	for id := 0; id < topo.EdgeCount(); id++ {
		e := topo.EdgeEndpoints(id)
		tail := topo.PortOf(e.U, id)
		head := topo.PortOf(e.V, id)
		nodes[e.U].Edge(nodes[e.V]).
			Attr("taillabel", strconv.Itoa(tail)).
			Attr("headlabel", strconv.Itoa(head))
	}

	_, err := io.WriteString(w, g.String())
	return err
}
