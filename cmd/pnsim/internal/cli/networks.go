package cli

import (
	"fmt"

	"github.com/twelho/pnsim/network"
)

var namedNetworks = map[string][]network.EdgePair{
	"bp1":    network.BPNetwork1,
	"cycle4": network.Cycle4,
	"net2":   network.Network2,
	"cycle6": network.Cycle6,
}

func resolveNetwork(name string) (*network.Topology, error) {
	edges, ok := namedNetworks[name]
	if !ok {
		return nil, fmt.Errorf("unknown network %q (want one of: bp1, cycle4, net2, cycle6)", name)
	}
	return network.Build(edges)
}
