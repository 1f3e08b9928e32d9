// Package network builds the simple undirected graph a PN simulation
// runs over and assigns each vertex its stable local port numbering.
//
// A Topology is pure graph shape: vertex count, per-vertex degree, and
// per-vertex port order. It carries no message type and is built once
// from an edge list (see Build). The per-edge communication channel is
// a separate, generic Channel[M]: the simulator creates one per edge at
// run setup, once it knows the algorithm's message type, and acquires
// its two Endpoints in the same vertex order Build used to assign ports
// — so port numbers, send order and receive order always agree.
package network
