package simulator

import "time"

// Options configures a Simulator run. Resolve it with functional Option
// values rather than constructing it directly.
type Options struct {
	// Timeout bounds both the send and the receive phase, across every
	// round of the run: deadline = start + Timeout.
	Timeout time.Duration

	// RoundLimit, if > 0, stops every worker after that many rounds
	// regardless of whether it reached a stopping state. Zero means
	// unbounded (rely on per-vertex termination and the global
	// stopping-vertex counter instead).
	RoundLimit int

	// Strict controls what happens when a vertex's state changes after
	// it already reported a stopping state (the stop-absorption
	// invariant). True (the default) panics, since this indicates an
	// algorithm or engine bug that should halt the process per the
	// PN model's contract. False downgrades the violation to a
	// *StopViolationError folded into the run's returned error.
	Strict bool
}

const defaultTimeout = 30 * time.Second

func defaultOptions() Options {
	return Options{
		Timeout: defaultTimeout,
		Strict:  true,
	}
}

// Option mutates Options during Simulator construction.
type Option func(*Options)

// WithTimeout sets the per-run send/receive deadline.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) { o.Timeout = d }
}

// WithRoundLimit caps the number of rounds any worker will execute.
func WithRoundLimit(n int) Option {
	return func(o *Options) { o.RoundLimit = n }
}

// WithStrictMode toggles strict stop-absorption checking.
func WithStrictMode(strict bool) Option {
	return func(o *Options) { o.Strict = strict }
}
