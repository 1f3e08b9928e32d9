// Package dotprint renders a network.Topology and its per-vertex final
// states as Graphviz DOT, using github.com/emicklei/dot. Each edge
// carries taillabel/headlabel attributes naming the 1-based port number
// at its source and target endpoint, in the same deterministic order
// the simulator used for send/receive.
package dotprint
