package cli

import (
	"github.com/spf13/cobra"

	"github.com/twelho/pnsim/algorithms/bipartite"
)

func newBMMCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bmm <network>",
		Short: "Run Bipartite Maximal Matching (requires an even/odd-bipartite network)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			topo, err := resolveNetwork(args[0])
			if err != nil {
				return err
			}
			return runAndPrint[bipartite.State, bipartite.Message](topo, bipartite.Algorithm{})
		},
	}
}
