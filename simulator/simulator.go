package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	multierror "github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/twelho/pnsim/dotprint"
	"github.com/twelho/pnsim/network"
	"github.com/twelho/pnsim/pnmodel"
)

// Simulator runs algo over topo: one goroutine per vertex, synchronous
// send/receive rounds, deadline-bounded channel operations.
type Simulator[S pnmodel.State, M pnmodel.Message] struct {
	topo *network.Topology
	algo pnmodel.Algorithm[S, M]
	opts Options
	log  *logrus.Logger
}

// New builds a Simulator for algo over topo. Per-vertex initial states
// are not computed until Run; each call to Run creates its own states
// and edge channels.
func New[S pnmodel.State, M pnmodel.Message](topo *network.Topology, algo pnmodel.Algorithm[S, M], opts ...Option) *Simulator[S, M] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	log := logrus.New()
	log.SetLevel(logrus.InfoLevel)

	return &Simulator[S, M]{topo: topo, algo: algo, opts: o, log: log}
}

// Report is the outcome of a run: the final state of every vertex, the
// number that reached a stopping state, and the vertex count.
type Report[S pnmodel.State] struct {
	States  []S
	Stopped int
	N       int
}

// Successful reports whether every vertex reached a stopping state.
func (r *Report[S]) Successful() bool { return r.Stopped >= r.N }

// Print renders the final network as Graphviz DOT, each vertex labelled
// by its final state and each edge carrying the taillabel/headlabel port
// attributes the engine used for send/receive.
func (r *Report[S]) Print(w io.Writer, topo *network.Topology) error {
	return dotprint.Write(w, topo, r.States)
}

// workerResult is what a single vertex goroutine hands back to Run.
type workerResult struct {
	vertex int
	state  any
	cause  error
}

// Run executes the simulation to completion: every worker either
// reaches global termination or exits on a deadline/closed channel. It
// returns once all workers have exited. A non-nil error is always a
// *RunError. In strict mode (the default) a stop-absorption violation
// panics instead of returning; with WithStrictMode(false) the violating
// vertex is listed in the RunError with a *StopViolationError cause.
func (s *Simulator[S, M]) Run(ctx context.Context) (*Report[S], error) {
	n := s.topo.N()
	s.log.WithFields(logrus.Fields{
		"algorithm": s.algo.Name(),
		"nodes":     n,
		"edges":     s.topo.EdgeCount(),
	}).Infof("simulating the %s algorithm in a PN network with %d nodes and %d edges...", s.algo.Name(), n, s.topo.EdgeCount())

	channels := make([]*network.Channel[M], s.topo.EdgeCount())
	for i := range channels {
		channels[i] = network.NewChannel[M]()
	}

	deadline := time.Now().Add(s.opts.Timeout)
	runCtx, cancel := context.WithDeadline(ctx, deadline)
	defer cancel()

	var stopped atomic.Int32
	results := make([]workerResult, n)

	var wg sync.WaitGroup
	wg.Add(n)
	for v := 0; v < n; v++ {
		v := v
		senders := make([]network.Sender[M], s.topo.Degree(v))
		receivers := make([]network.Receiver[M], s.topo.Degree(v))
		for port := 1; port <= s.topo.Degree(v); port++ {
			edgeID, _ := s.topo.EdgeAt(v, port)
			snd, rcv, err := channels[edgeID].Endpoint()
			if err != nil {
				// Every edge is visited by exactly its two incident
				// vertices, each exactly once: this can never happen
				// with a correctly built Topology.
				panic(fmt.Errorf("simulator: %w", err))
			}
			senders[port-1] = snd
			receivers[port-1] = rcv
		}

		go s.runWorker(runCtx, v, senders, receivers, &stopped, int32(n), &results[v], &wg)
	}

	wg.Wait()

	return s.collect(results, n)
}

func (s *Simulator[S, M]) runWorker(
	ctx context.Context,
	v int,
	senders []network.Sender[M],
	receivers []network.Receiver[M],
	stopped *atomic.Int32,
	n int32,
	out *workerResult,
	wg *sync.WaitGroup,
) {
	defer wg.Done()
	defer func() {
		for _, snd := range senders {
			snd.Close()
		}
		for _, rcv := range receivers {
			rcv.Close()
		}
	}()

	deg := len(senders)
	state := s.algo.Init(pnmodel.Input{
		NodeID:     v,
		NodeCount:  int(n),
		NodeDegree: deg,
	})

	var stoppingState S
	haveStoppingState := false
	rounds := 0

	for {
		if err := s.sendPhase(ctx, v, state, senders); err != nil {
			s.finish(out, v, state, haveStoppingState, err)
			return
		}

		messages, err := s.receivePhase(ctx, v, receivers)
		if err != nil {
			s.finish(out, v, state, haveStoppingState, err)
			return
		}

		state = s.algo.Receive(state, slices.Values(messages))
		rounds++

		if haveStoppingState {
			if !state.Equal(stoppingState) {
				violation := &StopViolationError{Vertex: v}
				if s.opts.Strict {
					panic(violation)
				}
				s.finish(out, v, state, haveStoppingState, violation)
				return
			}
		} else if state.IsOutput() {
			stoppingState = state
			haveStoppingState = true
			stopped.Add(1)
		}

		if stopped.Load() >= n {
			break
		}
		if s.opts.RoundLimit > 0 && rounds >= s.opts.RoundLimit {
			break
		}
	}

	s.finish(out, v, state, haveStoppingState, nil)
}

func (s *Simulator[S, M]) sendPhase(ctx context.Context, v int, state S, senders []network.Sender[M]) error {
	next, stop := iter.Pull(s.algo.Send(state))
	defer stop()

	for _, snd := range senders {
		m, ok := next()
		if !ok {
			panic(fmt.Errorf("simulator: vertex %d: algorithm's send sequence yielded fewer than deg(v) elements", v))
		}
		if err := snd.Send(ctx, m); err != nil {
			if network.IsTimeout(err) {
				s.log.WithField("vertex", v).Warn("send timeout!")
			}
			return err
		}
	}
	return nil
}

func (s *Simulator[S, M]) receivePhase(ctx context.Context, v int, receivers []network.Receiver[M]) ([]M, error) {
	messages := make([]M, len(receivers))
	for i, rcv := range receivers {
		m, err := rcv.Recv(ctx)
		if err != nil {
			if network.IsTimeout(err) {
				s.log.WithField("vertex", v).Warn("receive timeout!")
			}
			return nil, err
		}
		messages[i] = m
	}
	return messages, nil
}

func (s *Simulator[S, M]) finish(out *workerResult, v int, state S, _ bool, cause error) {
	out.vertex = v
	out.state = state
	out.cause = cause
}

func (s *Simulator[S, M]) collect(results []workerResult, n int) (*Report[S], error) {
	states := make([]S, n)
	stopped := 0
	var unfinished []int
	var causes *multierror.Error

	for _, r := range results {
		states[r.vertex] = r.state.(S)
		var violation *StopViolationError
		if states[r.vertex].IsOutput() && !errors.As(r.cause, &violation) {
			stopped++
		} else {
			unfinished = append(unfinished, r.vertex)
			if r.cause != nil {
				causes = multierror.Append(causes, fmt.Errorf("vertex %d: %w", r.vertex, r.cause))
			} else {
				causes = multierror.Append(causes, fmt.Errorf("vertex %d: did not reach a stopping state", r.vertex))
			}
		}
	}

	report := &Report[S]{States: states, Stopped: stopped, N: n}

	if len(unfinished) > 0 {
		s.log.Errorf(
			"simulation FAILED! timeout reached with %d node(s) still running, states in the resulting network are NOT final! "+
				"hint: check for deadlocks or increase the timeout",
			len(unfinished),
		)
		var causeErr error
		if causes != nil {
			causeErr = causes
		}
		return report, &RunError{Unfinished: unfinished, Causes: causeErr}
	}

	s.log.Info("simulation successful! all nodes reached stopping states.")
	return report, nil
}
