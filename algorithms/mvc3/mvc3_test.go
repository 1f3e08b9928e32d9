package mvc3_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twelho/pnsim/algorithms/mvc3"
	"github.com/twelho/pnsim/network"
	"github.com/twelho/pnsim/simulator"
)

func TestMVC3_Network2_CoversEveryEdge(t *testing.T) {
	topo, err := network.Build(network.Network2)
	require.NoError(t, err)

	sim := simulator.New[mvc3.State, mvc3.Message](topo, mvc3.Algorithm{})
	report, err := sim.Run(context.Background())
	require.NoError(t, err)
	require.True(t, report.Successful())

	inCover := make([]bool, topo.N())
	for v, s := range report.States {
		inCover[v] = s.Matched()
	}

	for _, e := range topo.Edges() {
		assert.Truef(t, inCover[e.U] || inCover[e.V],
			"edge {%d,%d} not covered: label(%d)=%v label(%d)=%v",
			e.U, e.V, e.U, inCover[e.U], e.V, inCover[e.V])
	}
}

func TestMVC3_Network2_CoverSizeWithinThreeTimesOptimum(t *testing.T) {
	// Network2 has a vertex cover of size 4 (e.g. {1, 2, 4, 6} covers
	// every edge), so OPT <= 4 and the 3-approximation bound allows up
	// to 12 of the 9 vertices — i.e. the property is non-binding here,
	// but we still assert the weaker sanity check that not every
	// vertex is trivially marked covered.
	topo, err := network.Build(network.Network2)
	require.NoError(t, err)

	sim := simulator.New[mvc3.State, mvc3.Message](topo, mvc3.Algorithm{})
	report, err := sim.Run(context.Background())
	require.NoError(t, err)
	require.True(t, report.Successful())

	covered := 0
	for _, s := range report.States {
		if s.Matched() {
			covered++
		}
	}
	assert.Greater(t, covered, 0)
	assert.Less(t, covered, topo.N())
}

func TestMVC3_State_StringIsCoverLabel(t *testing.T) {
	topo, err := network.Build(network.Cycle4)
	require.NoError(t, err)
	sim := simulator.New[mvc3.State, mvc3.Message](topo, mvc3.Algorithm{})
	report, err := sim.Run(context.Background())
	require.NoError(t, err)

	for _, s := range report.States {
		assert.Contains(t, []string{"0", "1"}, s.String())
	}
}
