package simulator

import "fmt"

// StopViolationError reports that a vertex computed a new state after
// already reaching a stopping state — a violation of the PN model's
// "stopping state is absorbing" invariant. It only surfaces when the
// Simulator is run with WithStrictMode(false); by default the same
// condition panics instead, since it indicates an algorithm bug rather
// than a runtime condition a caller can meaningfully recover from.
type StopViolationError struct {
	Vertex int
}

func (e *StopViolationError) Error() string {
	return fmt.Sprintf("simulator: vertex %d transitioned after reaching a stopping state", e.Vertex)
}

// RunError reports that the run finished (every worker exited) but one
// or more vertices never reached a stopping state — a liveness failure,
// not a hard error. The accompanying Report is still valid and safe to
// print.
type RunError struct {
	// Unfinished lists the vertex indices that were not in a stopping
	// state when their worker exited, or that violated stop absorption
	// in non-strict mode.
	Unfinished []int
	// Causes wraps one error per unfinished vertex (timeout or
	// stop-violation detail), for callers that want per-vertex detail.
	Causes error
}

func (e *RunError) Error() string {
	return fmt.Sprintf(
		"simulation FAILED! timeout reached with %d node(s) still running, states in the resulting network are NOT final! "+
			"hint: check for deadlocks or increase the timeout",
		len(e.Unfinished),
	)
}

func (e *RunError) Unwrap() error { return e.Causes }
