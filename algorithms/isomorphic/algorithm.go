package isomorphic

import (
	"fmt"
	"iter"

	"github.com/twelho/pnsim/pnmodel"
)

// State is Count(Round, Sum): the number of receive rounds completed
// and the running sum the vertex currently holds. Depth is carried
// alongside so State.IsOutput is self-contained; it is fixed for the
// lifetime of a run and always matches the Algorithm that produced it.
type State struct {
	Round int
	Sum   int
	Depth int
}

var _ pnmodel.State = State{}

// IsOutput reports whether the vertex has completed its Depth rounds.
func (s State) IsOutput() bool { return s.Round == s.Depth }

func (s State) String() string { return fmt.Sprintf("%d", s.Sum) }

func (s State) Equal(other pnmodel.State) bool {
	o, ok := other.(State)
	return ok && s == o
}

// Message carries a single running-sum value from sender to receiver.
type Message struct {
	Number int
}

var _ pnmodel.Message = Message{}

func (m Message) String() string { return fmt.Sprintf("Number(%d)", m.Number) }

// Algorithm is the Isomorphic Neighborhood gadget, parametric in the
// round depth D at which a vertex stops.
type Algorithm struct {
	Depth int
}

var _ pnmodel.Algorithm[State, Message] = Algorithm{}

func (a Algorithm) Name() string { return fmt.Sprintf("Isomorphic Neighborhood (depth %d)", a.Depth) }

func (a Algorithm) Init(in pnmodel.Input) State {
	return State{Round: 0, Sum: in.NodeDegree, Depth: a.Depth}
}

func (a Algorithm) Send(s State) iter.Seq[Message] {
	return func(yield func(Message) bool) {
		for {
			if !yield(Message{Number: s.Sum}) {
				return
			}
		}
	}
}

func (a Algorithm) Receive(s State, messages iter.Seq[Message]) State {
	if s.IsOutput() {
		return s
	}

	sum := 0
	for m := range messages {
		sum += m.Number
	}
	return State{Round: s.Round + 1, Sum: sum, Depth: s.Depth}
}
