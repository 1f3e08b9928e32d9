package bipartite

import "github.com/twelho/pnsim/pnmodel"

// Message is one of the four wire messages the BMM protocol exchanges.
type Message int

const (
	Noop Message = iota
	Proposal
	Accept
	Matched
)

var _ pnmodel.Message = Noop

func (m Message) String() string {
	switch m {
	case Noop:
		return "Noop"
	case Proposal:
		return "Proposal"
	case Accept:
		return "Accept"
	case Matched:
		return "Matched"
	default:
		return "?"
	}
}
