package mvc3

import (
	"iter"
	"slices"

	"github.com/twelho/pnsim/algorithms/bipartite"
	"github.com/twelho/pnsim/pnmodel"
)

// State pairs the two BMM sub-states that together represent one
// vertex's participation in both halves of the virtual double cover.
type State struct {
	S1 bipartite.State // forced White (NodeID 0)
	S2 bipartite.State // forced Black (NodeID 1)
}

var _ pnmodel.State = State{}

func (s State) IsOutput() bool { return s.S1.IsOutput() && s.S2.IsOutput() }

func (s State) Equal(other pnmodel.State) bool {
	o, ok := other.(State)
	return ok && s.S1.Equal(o.S1) && s.S2.Equal(o.S2)
}

// Matched reports whether either half ended up matched, i.e. the
// vertex belongs in the cover.
func (s State) Matched() bool { return s.S1.Matched() || s.S2.Matched() }

// String prints the cover-membership label the run's output names per
// vertex: "1" if the vertex is in the cover, "0" otherwise.
func (s State) String() string {
	if s.Matched() {
		return "1"
	}
	return "0"
}

// Message packs one BMM message bound for the receiving vertex's S1
// and one bound for its S2. The sender builds this pair from its own
// state with the halves swapped (see Send), so no unswapping is
// needed on the receiving side.
type Message struct {
	ForS1 bipartite.Message
	ForS2 bipartite.Message
}

var _ pnmodel.Message = Message{}

func (m Message) String() string { return "(" + m.ForS1.String() + ", " + m.ForS2.String() + ")" }

// Algorithm runs two BMM sub-algorithms per vertex, wired to simulate
// the virtual bipartite double cover over the real edge set.
type Algorithm struct{}

var _ pnmodel.Algorithm[State, Message] = Algorithm{}

var bmm = bipartite.Algorithm{}

func (Algorithm) Name() string { return "Minimum Vertex Cover (3-approximation via BMM double cover)" }

// Init forwards NodeCount/NodeDegree unchanged but forces S1's
// NodeID to 0 (White) and S2's to 1 (Black), regardless of the real
// vertex's parity: every vertex participates in both halves of the
// double cover.
func (Algorithm) Init(in pnmodel.Input) State {
	in1 := in
	in1.NodeID = 0
	in2 := in
	in2.NodeID = 1
	return State{S1: bmm.Init(in1), S2: bmm.Init(in2)}
}

// Send combines the two sub-sequences element-wise. Virtual edge
// (u_even, v_odd) carries u.S1's traffic to v.S2, and virtual edge
// (u_odd, v_even) carries u.S2's traffic to v.S1; over the single
// physical channel this is expressed by packing S2's outgoing message
// into the ForS1 slot and S1's into the ForS2 slot, so that whichever
// half of the peer consumes a slot receives what this vertex's other
// half actually sent.
func (Algorithm) Send(s State) iter.Seq[Message] {
	return func(yield func(Message) bool) {
		next1, stop1 := iter.Pull(bmm.Send(s.S1))
		defer stop1()
		next2, stop2 := iter.Pull(bmm.Send(s.S2))
		defer stop2()

		for {
			m1, ok1 := next1()
			m2, ok2 := next2()
			if !ok1 || !ok2 {
				return
			}
			if !yield(Message{ForS1: m2, ForS2: m1}) {
				return
			}
		}
	}
}

// Receive unzips the incoming pair-messages into two port-ordered
// streams and runs each half's BMM receive independently.
func (Algorithm) Receive(s State, messages iter.Seq[Message]) State {
	msgs := slices.Collect(messages)

	msgs1 := make([]bipartite.Message, len(msgs))
	msgs2 := make([]bipartite.Message, len(msgs))
	for i, m := range msgs {
		msgs1[i] = m.ForS1
		msgs2[i] = m.ForS2
	}

	return State{
		S1: bmm.Receive(s.S1, slices.Values(msgs1)),
		S2: bmm.Receive(s.S2, slices.Values(msgs2)),
	}
}
