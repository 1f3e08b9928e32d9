package cli

import (
	"github.com/spf13/cobra"

	"github.com/twelho/pnsim/algorithms/mvc3"
)

func newMVC3Cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mvc3 <network>",
		Short: "Approximate Minimum Vertex Cover via a BMM virtual bipartite double cover",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			topo, err := resolveNetwork(args[0])
			if err != nil {
				return err
			}
			return runAndPrint[mvc3.State, mvc3.Message](topo, mvc3.Algorithm{})
		},
	}
}
