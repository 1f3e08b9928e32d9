// Package pnmodel declares the algorithm contract of the Port Numbering
// (PN) model of distributed computing: an anonymous, synchronous network
// where every vertex runs the same state machine and talks to its
// neighbors only through 1-based local port numbers.
//
// An algorithm is a stateless triple of functions over a per-vertex
// State and a per-edge Message:
//
//	Init(Input) State
//	Send(State) iter.Seq[Message]
//	Receive(State, iter.Seq[Message]) State
//
// Send returns a lazy sequence (stdlib iter.Seq) rather than a fixed-size
// slice so that "repeat the same message to every port" and "one message
// at a distinguished port, Noop elsewhere" are both cheap to express; the
// simulator is the only caller, and it pulls exactly deg(v) items.
//
// PN algorithms must not rely on Input.NodeID as a unique identifier:
// the model is anonymous. It is provided because some constructions
// (see algorithms/mvc3) instantiate the same algorithm twice per vertex
// and need to force a different role for each copy.
package pnmodel
