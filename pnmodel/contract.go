package pnmodel

import "iter"

// Input is the per-vertex information handed to Init. PN algorithms
// must not use NodeID as a unique identifier: algorithms/bipartite reads
// only its parity as the vertex's side of the even/odd bipartition, and
// algorithms/mvc3 overrides it to force each BMM half's role.
type Input struct {
	NodeID     int
	NodeCount  int
	NodeDegree int
}

// State is the opaque, per-vertex value an algorithm threads through
// rounds. It must be comparable for equality and printable; comparable
// is expressed as an Equal method rather than Go's built-in == so that
// implementations holding map/slice-typed bookkeeping (sets
// of port indices, for instance) can define equality over just their
// observable fields without the simulator panicking on an uncomparable
// struct.
type State interface {
	// IsOutput reports whether this is a stopping state. Once a vertex
	// produces a stopping state, every later state it computes must
	// compare Equal to it.
	IsOutput() bool

	// Equal reports whether this state is equivalent to other, for the
	// purposes of the stop-absorption invariant.
	Equal(other State) bool
}

// Message is the opaque, per-edge value exchanged once per port per
// round. It must be printable for the DOT/log output paths.
type Message interface {
	String() string
}

// Algorithm is a stateless Port Numbering algorithm over state type S and
// message type M. Init, Send and Receive must be pure functions of their
// arguments — the simulator is the only owner of any given State value.
type Algorithm[S State, M Message] interface {
	// Name is a human-readable label used in run-start log lines.
	Name() string

	// Init is called once per vertex by that vertex's worker when a run
	// starts; building the Topology does not call it.
	Init(in Input) S

	// Send yields the outgoing message sequence for the current state.
	// The simulator consumes exactly deg(v) elements from it per round;
	// the sequence must be able to yield at least that many.
	Send(s S) iter.Seq[M]

	// Receive consumes exactly deg(v) messages, one per port in port
	// order, and returns the next state. Implementations must drain the
	// iterator fully — the simulator's round accounting depends on it.
	Receive(s S, messages iter.Seq[M]) S
}
