package bipartite

import (
	"fmt"

	"github.com/twelho/pnsim/pnmodel"
)

// Color is the even/odd partition side assigned to a vertex by its
// NodeID. Even vertices are White, odd vertices are Black; the BMM
// protocol treats this partition as the two sides of a bipartite graph.
type Color int

const (
	White Color = iota
	Black
)

func colorOf(nodeID int) Color {
	if nodeID%2 == 0 {
		return White
	}
	return Black
}

func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Kind names the four matching states a vertex can be in.
type Kind int

const (
	KindUR Kind = iota // unmatched, running
	KindMR             // matched over Port, still running
	KindUS             // unmatched, stopped (terminal)
	KindMS             // matched over Port, stopped (terminal)
)

// MatchingState is the small comparable value the simulator's stopping
// check is restricted to: once a vertex reports IsOutput, every later
// state must Equal this one, and this is the only field that
// comparison inspects.
type MatchingState struct {
	Kind Kind
	Port int // meaningful only for KindMR and KindMS
}

func (m MatchingState) String() string {
	switch m.Kind {
	case KindUR:
		return "UR"
	case KindMR:
		return fmt.Sprintf("MR(%d)", m.Port+1)
	case KindUS:
		return "US"
	case KindMS:
		return fmt.Sprintf("MS(%d)", m.Port+1)
	default:
		return "?"
	}
}

// State is a vertex's BMM state: its fixed degree and color, the round
// counter, the current matching status, and (Black vertices only) the
// two working port sets m_set/x_set from the protocol.
type State struct {
	Degree   int
	Color    Color
	Round    int
	Matching MatchingState
	MSet     map[int]bool // Black only: ports that have proposed
	XSet     map[int]bool // Black only: ports not yet known matched elsewhere
}

var _ pnmodel.State = State{}

// IsOutput reports whether the vertex has reached a stopping state: US
// or MS(_).
func (s State) IsOutput() bool {
	return s.Matching.Kind == KindUS || s.Matching.Kind == KindMS
}

// Matched reports whether the vertex ended up in MS(_), i.e. matched
// and stopped. Used by algorithms/mvc3 to decide cover membership.
func (s State) Matched() bool {
	return s.Matching.Kind == KindMS
}

// Equal compares only the Matching field, mirroring the original
// protocol's equality: Round keeps advancing after a vertex stops, so
// it must not participate in the stopping-state comparison, and the
// other fields are not compared either.
func (s State) Equal(other pnmodel.State) bool {
	o, ok := other.(State)
	if !ok {
		return false
	}
	return s.Matching == o.Matching
}

func (s State) String() string {
	return s.Matching.String()
}

func cloneSet(m map[int]bool) map[int]bool {
	out := make(map[int]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// minKey returns the smallest key present in a non-empty set. Panics
// on an empty set; callers only invoke it after checking non-emptiness.
func minKey(m map[int]bool) int {
	first := true
	min := 0
	for k := range m {
		if first || k < min {
			min = k
			first = false
		}
	}
	if first {
		panic("bipartite: minKey called on an empty set")
	}
	return min
}
