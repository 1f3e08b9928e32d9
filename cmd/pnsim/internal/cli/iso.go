package cli

import (
	"github.com/spf13/cobra"

	"github.com/twelho/pnsim/algorithms/isomorphic"
)

func newIsoCmd() *cobra.Command {
	var depth int

	cmd := &cobra.Command{
		Use:   "iso <network>",
		Short: "Run the Isomorphic Neighborhood counting gadget to a fixed depth",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			topo, err := resolveNetwork(args[0])
			if err != nil {
				return err
			}
			return runAndPrint[isomorphic.State, isomorphic.Message](topo, isomorphic.Algorithm{Depth: depth})
		},
	}

	cmd.Flags().IntVar(&depth, "depth", 5, "round depth D at which a vertex stops")
	return cmd
}
