package bipartite

import (
	"iter"
	"slices"

	"github.com/twelho/pnsim/pnmodel"
)

// Algorithm implements Bipartite Maximal Matching over the Port
// Numbering contract.
type Algorithm struct{}

var _ pnmodel.Algorithm[State, Message] = Algorithm{}

func (Algorithm) Name() string { return "Bipartite Maximal Matching" }

func (Algorithm) Init(in pnmodel.Input) State {
	color := colorOf(in.NodeID)

	var xSet map[int]bool
	if color == Black {
		xSet = make(map[int]bool, in.NodeDegree)
		for i := 0; i < in.NodeDegree; i++ {
			xSet[i] = true
		}
	}

	return State{
		Degree:   in.NodeDegree,
		Color:    color,
		Round:    0,
		Matching: MatchingState{Kind: KindUR},
		MSet:     make(map[int]bool),
		XSet:     xSet,
	}
}

// Send selects the first matching clause from the protocol's send
// rules; everything else defaults to Noop on every port.
func (Algorithm) Send(s State) iter.Seq[Message] {
	switch {
	case s.Color == White && s.Round%2 == 0 && s.Matching.Kind == KindUR && s.Round/2 < s.Degree:
		propose := s.Round / 2
		return func(yield func(Message) bool) {
			for i := 0; ; i++ {
				m := Noop
				if i == propose {
					m = Proposal
				}
				if !yield(m) {
					return
				}
			}
		}

	case s.Color == White && s.Round%2 == 0 && s.Matching.Kind == KindMR:
		return repeatForever(Matched)

	case s.Color == Black && s.Round%2 != 0 && s.Matching.Kind == KindUR && len(s.MSet) > 0:
		accept := minKey(s.MSet)
		return func(yield func(Message) bool) {
			for i := 0; ; i++ {
				m := Noop
				if i == accept {
					m = Accept
				}
				if !yield(m) {
					return
				}
			}
		}

	default:
		return repeatForever(Noop)
	}
}

func repeatForever(m Message) iter.Seq[Message] {
	return func(yield func(Message) bool) {
		for {
			if !yield(m) {
				return
			}
		}
	}
}

// Receive applies the first matching receive clause against the
// pre-increment round/state, then increments the round unconditionally.
func (Algorithm) Receive(s State, messages iter.Seq[Message]) State {
	msgs := slices.Collect(messages)

	firstAccept := -1
	for i, m := range msgs {
		if m == Accept {
			firstAccept = i
			break
		}
	}

	result := s
	result.Round = s.Round + 1

	switch {
	case s.Color == White && s.Round%2 == 0 && s.Matching.Kind == KindUR && s.Round/2+1 > s.Degree:
		result.Matching = MatchingState{Kind: KindUS}

	case s.Color == White && s.Round%2 == 0 && s.Matching.Kind == KindMR:
		result.Matching = MatchingState{Kind: KindMS, Port: s.Matching.Port}

	case s.Color == White && s.Round%2 != 0 && s.Matching.Kind == KindUR && firstAccept >= 0:
		result.Matching = MatchingState{Kind: KindMR, Port: firstAccept}

	case s.Color == Black && s.Round%2 != 0 && s.Matching.Kind == KindUR && len(s.MSet) > 0:
		result.Matching = MatchingState{Kind: KindMS, Port: minKey(s.MSet)}

	case s.Color == Black && s.Round%2 != 0 && s.Matching.Kind == KindUR && len(s.XSet) == 0:
		result.Matching = MatchingState{Kind: KindUS}

	case s.Color == Black && s.Round%2 == 0 && s.Matching.Kind == KindUR:
		result.MSet = cloneSet(s.MSet)
		result.XSet = cloneSet(s.XSet)
		for i, m := range msgs {
			switch m {
			case Matched:
				delete(result.XSet, i)
			case Proposal:
				result.MSet[i] = true
			}
		}
	}

	return result
}
