// Package simulator runs a pnmodel.Algorithm over a network.Topology: one
// goroutine per vertex, alternating send and receive phases in lock-step
// rounds, with a deadline shared across the whole run.
//
// Synchronization falls entirely out of the capacity-1 edge channels: a
// worker cannot start round k+1 on an edge before its neighbor has both
// sent and received in round k, so no central barrier is needed. A
// single atomic counter of vertices that have reached a stopping state
// lets workers decide when the whole run is done; vertex state is
// otherwise owned exclusively by the goroutine that computes it.
//
// Logging uses github.com/sirupsen/logrus with structured fields
// (algorithm, nodes, edges, vertex) instead of bare fmt.Println, and failures
// across vertices are aggregated with github.com/hashicorp/go-multierror
// so a caller can inspect exactly which vertices never reached a
// stopping state rather than only a count.
package simulator
