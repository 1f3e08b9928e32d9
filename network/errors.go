package network

import "errors"

var (
	// ErrNoEdges indicates an empty edge list was given to Build.
	ErrNoEdges = errors.New("network: no edges given")

	// ErrNotSimple indicates the edge list contains a self-loop or a
	// duplicate edge; the PN model requires a simple graph.
	ErrNotSimple = errors.New("network: graph must be simple")

	// ErrThirdEndpoint indicates a third call to Channel.Endpoint for
	// the same edge. Every edge has exactly two endpoints; a third
	// acquisition is an engine bug, not a configuration error.
	ErrThirdEndpoint = errors.New("network: attempt to acquire third endpoint for edge")
)

// errClosed and errTimeout are returned by Sender.Send/Receiver.Recv.
// They are unexported values compared by identity (errors.Is) from the
// simulator package, which treats them as "this vertex is done" rather
// than user-facing configuration errors.
var (
	errClosed  = errors.New("network: channel closed")
	errTimeout = errors.New("network: channel deadline exceeded")
)

// IsClosed reports whether err is the channel-closed sentinel returned
// by Sender.Send or Receiver.Recv.
func IsClosed(err error) bool { return errors.Is(err, errClosed) }

// IsTimeout reports whether err is the deadline-exceeded sentinel
// returned by Sender.Send or Receiver.Recv.
func IsTimeout(err error) bool { return errors.Is(err, errTimeout) }
