package simulator_test

import (
	"context"
	"errors"
	"iter"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twelho/pnsim/network"
	"github.com/twelho/pnsim/pnmodel"
	"github.com/twelho/pnsim/simulator"
)

// echoState is a minimal algorithm that stops after exactly one round,
// used to exercise the engine without pulling in a real algorithm
// package.
type echoState struct {
	done bool
}

func (s echoState) IsOutput() bool { return s.done }
func (s echoState) Equal(other pnmodel.State) bool {
	o, ok := other.(echoState)
	return ok && s == o
}
func (s echoState) String() string {
	if s.done {
		return "done"
	}
	return "running"
}

type echoMessage struct{}

func (echoMessage) String() string { return "ping" }

type echoAlgorithm struct{}

func (echoAlgorithm) Name() string { return "echo" }
func (echoAlgorithm) Init(pnmodel.Input) echoState {
	return echoState{}
}
func (echoAlgorithm) Send(echoState) iter.Seq[echoMessage] {
	return func(yield func(echoMessage) bool) {
		for {
			if !yield(echoMessage{}) {
				return
			}
		}
	}
}
func (echoAlgorithm) Receive(s echoState, messages iter.Seq[echoMessage]) echoState {
	for range messages {
	}
	return echoState{done: true}
}

func TestSimulator_AllVerticesTerminate(t *testing.T) {
	topo, err := network.Build(network.Cycle4)
	require.NoError(t, err)

	sim := simulator.New[echoState, echoMessage](topo, echoAlgorithm{})
	report, err := sim.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, report.Successful())
	assert.Equal(t, topo.N(), report.Stopped)
	for _, s := range report.States {
		assert.True(t, s.IsOutput())
	}
}

func TestSimulator_RoundLimit_LeavesVerticesUnfinished(t *testing.T) {
	// neverStops never reports IsOutput, so a round limit is the only
	// way the run terminates; the resulting error must report every
	// vertex as unfinished.
	topo, err := network.Build(network.Cycle4)
	require.NoError(t, err)

	sim := simulator.New[neverStopsState, echoMessage](topo, neverStopsAlgorithm{}, simulator.WithRoundLimit(3))
	report, err := sim.Run(context.Background())
	require.Error(t, err)
	assert.False(t, report.Successful())

	var runErr *simulator.RunError
	require.True(t, errors.As(err, &runErr))
	assert.Len(t, runErr.Unfinished, topo.N())
}

func TestSimulator_Timeout_ReportsFailure(t *testing.T) {
	topo, err := network.Build(network.Cycle4)
	require.NoError(t, err)

	sim := simulator.New[neverStopsState, echoMessage](topo, neverStopsAlgorithm{}, simulator.WithTimeout(10*time.Millisecond))
	_, err = sim.Run(context.Background())
	require.Error(t, err)

	var runErr *simulator.RunError
	require.True(t, errors.As(err, &runErr))
}

// neverStopsState/neverStopsAlgorithm model an algorithm that simply
// never reaches a stopping state, to exercise round-limit/timeout exit
// paths distinctly from the normal termination path.
type neverStopsState struct{ n int }

func (s neverStopsState) IsOutput() bool { return false }
func (s neverStopsState) Equal(other pnmodel.State) bool {
	o, ok := other.(neverStopsState)
	return ok && s == o
}
func (s neverStopsState) String() string { return "running" }

type neverStopsAlgorithm struct{}

func (neverStopsAlgorithm) Name() string { return "never-stops" }
func (neverStopsAlgorithm) Init(pnmodel.Input) neverStopsState {
	return neverStopsState{}
}
func (neverStopsAlgorithm) Send(neverStopsState) iter.Seq[echoMessage] {
	return func(yield func(echoMessage) bool) {
		for {
			if !yield(echoMessage{}) {
				return
			}
		}
	}
}
func (neverStopsAlgorithm) Receive(s neverStopsState, messages iter.Seq[echoMessage]) neverStopsState {
	for range messages {
	}
	return neverStopsState{n: s.n + 1}
}
