package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_NoEdges(t *testing.T) {
	_, err := Build(nil)
	assert.ErrorIs(t, err, ErrNoEdges)
}

func TestBuild_SelfLoopRejected(t *testing.T) {
	_, err := Build([]EdgePair{{0, 0}})
	assert.ErrorIs(t, err, ErrNotSimple)
}

func TestBuild_DuplicateEdgeRejected(t *testing.T) {
	_, err := Build([]EdgePair{{0, 1}, {0, 1}})
	assert.ErrorIs(t, err, ErrNotSimple)
}

func TestBuild_DuplicateEdgeRejected_ReverseOrder(t *testing.T) {
	// (1,0) normalizes to the same edge as (0,1) — still a duplicate.
	_, err := Build([]EdgePair{{0, 1}, {1, 0}})
	assert.ErrorIs(t, err, ErrNotSimple)
}

func TestBuild_DegreesAndPortCount(t *testing.T) {
	topo, err := Build(BPNetwork1)
	require.NoError(t, err)

	require.Equal(t, 6, topo.N())
	assert.Equal(t, 1, topo.Degree(0))
	assert.Equal(t, 3, topo.Degree(1))
	assert.Equal(t, 3, topo.Degree(2))
	assert.Equal(t, 1, topo.Degree(3))
	assert.Equal(t, 1, topo.Degree(4))
	assert.Equal(t, 1, topo.Degree(5))
}

func TestTopology_PortsAgreeWithEdgeAt(t *testing.T) {
	topo, err := Build(Cycle4)
	require.NoError(t, err)

	for v := 0; v < topo.N(); v++ {
		for port := 1; port <= topo.Degree(v); port++ {
			edgeID, peer := topo.EdgeAt(v, port)
			assert.Equal(t, port, topo.PortOf(v, edgeID))
			// The peer must also list this same edge among its ports.
			found := false
			for p := 1; p <= topo.Degree(peer); p++ {
				eid, back := topo.EdgeAt(peer, p)
				if eid == edgeID {
					found = true
					assert.Equal(t, v, back)
				}
			}
			assert.True(t, found, "edge %d not found from peer %d", edgeID, peer)
		}
	}
}
