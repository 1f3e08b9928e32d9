package isomorphic_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twelho/pnsim/algorithms/isomorphic"
	"github.com/twelho/pnsim/network"
	"github.com/twelho/pnsim/pnmodel"
	"github.com/twelho/pnsim/simulator"
)

func TestIsomorphic_Cycle6_Depth5(t *testing.T) {
	topo, err := network.Build(network.Cycle6)
	require.NoError(t, err)

	sim := simulator.New[isomorphic.State, isomorphic.Message](topo, isomorphic.Algorithm{Depth: 5})
	report, err := sim.Run(context.Background())
	require.NoError(t, err)
	require.True(t, report.Successful())

	for v, s := range report.States {
		assert.Equalf(t, 64, s.Sum, "vertex %d: want 64 after depth 5 on a 2-regular cycle, got %d", v, s.Sum)
		assert.Equal(t, "64", s.String())
	}
}

func TestIsomorphic_KRegular_Progression(t *testing.T) {
	// K4 (every pair of the 4 vertices connected) is 3-regular; starting
	// from Count(0, 3), after depth rounds every vertex holds 3^(depth+1).
	edges := []network.EdgePair{
		{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3},
		{U: 1, V: 2}, {U: 1, V: 3},
		{U: 2, V: 3},
	}
	topo, err := network.Build(edges)
	require.NoError(t, err)

	want := []int{3, 9, 27, 81, 243} // depth 0..4
	for depth, expected := range want {
		sim := simulator.New[isomorphic.State, isomorphic.Message](topo, isomorphic.Algorithm{Depth: depth})
		report, err := sim.Run(context.Background())
		require.NoError(t, err)
		require.True(t, report.Successful())
		for v, s := range report.States {
			assert.Equalf(t, expected, s.Sum, "depth %d, vertex %d", depth, v)
		}
	}
}

func TestIsomorphic_ZeroDepth_InitialStateIsOutput(t *testing.T) {
	a := isomorphic.Algorithm{Depth: 0}
	s := a.Init(pnmodel.Input{NodeID: 0, NodeCount: 5, NodeDegree: 3})
	assert.True(t, s.IsOutput())
	assert.Equal(t, 3, s.Sum)
}
