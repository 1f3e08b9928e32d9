package network

import (
	"context"
	"sync"

	"github.com/twelho/pnsim/pnmodel"
)

// half is one direction of a Channel: a capacity-1 data buffer plus a
// separate close-once signal the reading side raises when it stops
// reading. Both ends are needed to get symmetric "closed" semantics:
// the writer closes data (so a blocked or future reader wakes up with
// ok=false), and the reader closes gone (so a blocked or future writer
// fails instead of hanging on a buffer nobody empties anymore).
type half[M pnmodel.Message] struct {
	data     chan M
	dataOnce sync.Once

	gone     chan struct{}
	goneOnce sync.Once
}

func newHalf[M pnmodel.Message]() *half[M] {
	return &half[M]{data: make(chan M, 1), gone: make(chan struct{})}
}

func (h *half[M]) closeData() { h.dataOnce.Do(func() { close(h.data) }) }
func (h *half[M]) closeGone() { h.goneOnce.Do(func() { close(h.gone) }) }

// Sender is the write side of one direction of an edge Channel.
type Sender[M pnmodel.Message] struct{ h *half[M] }

// Send places m in the direction's single buffer slot, blocking until
// that slot is free, the peer closes its Receiver, or ctx is done.
func (s Sender[M]) Send(ctx context.Context, m M) error {
	select {
	case <-s.h.gone:
		return errClosed
	default:
	}

	select {
	case s.h.data <- m:
		return nil
	case <-s.h.gone:
		return errClosed
	case <-ctx.Done():
		return errTimeout
	}
}

// Close signals this direction as closed to the peer's Receiver. A
// worker calls this on every Sender it owns when it exits, cascading
// termination to its neighbors.
func (s Sender[M]) Close() { s.h.closeData() }

// Receiver is the read side of one direction of an edge Channel.
type Receiver[M pnmodel.Message] struct{ h *half[M] }

// Recv blocks until a message arrives, the peer's Sender closes, or ctx
// is done.
func (r Receiver[M]) Recv(ctx context.Context) (M, error) {
	var zero M
	select {
	case m, ok := <-r.h.data:
		if !ok {
			return zero, errClosed
		}
		return m, nil
	case <-ctx.Done():
		return zero, errTimeout
	}
}

// Close signals this direction as closed to the peer's Sender, so a
// blocked or future Send on it fails instead of waiting forever on a
// buffer nobody drains anymore.
func (r Receiver[M]) Close() { r.h.closeGone() }

// Channel is a bidirectional edge between two vertices: two independent
// single-slot buffers, one per direction. Endpoint acquires one of the
// two sides; the first call returns (sender on ab, receiver on ba), the
// second returns the mirror (sender on ba, receiver on ab). A third call
// is an engine bug.
type Channel[M pnmodel.Message] struct {
	mu        sync.Mutex
	connected int
	ab, ba    *half[M]
}

// NewChannel allocates a fresh, unconnected Channel.
func NewChannel[M pnmodel.Message]() *Channel[M] {
	return &Channel[M]{ab: newHalf[M](), ba: newHalf[M]()}
}

// Endpoint acquires one side of the channel. It must be called exactly
// twice per Channel, once per vertex incident to the edge, in the same
// relative order both vertices agree on (the simulator guarantees this
// by always visiting the lower-indexed vertex of an edge first).
func (c *Channel[M]) Endpoint() (Sender[M], Receiver[M], error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.connected {
	case 0:
		c.connected = 1
		return Sender[M]{c.ab}, Receiver[M]{c.ba}, nil
	case 1:
		c.connected = 2
		return Sender[M]{c.ba}, Receiver[M]{c.ab}, nil
	default:
		var zs Sender[M]
		var zr Receiver[M]
		return zs, zr, ErrThirdEndpoint
	}
}
