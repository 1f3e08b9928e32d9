package cli

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/twelho/pnsim/network"
	"github.com/twelho/pnsim/pnmodel"
	"github.com/twelho/pnsim/simulator"
)

var (
	timeout    time.Duration
	roundLimit int
	strict     bool
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pnsim",
		Short: "Simulate Port Numbering model algorithms over a network",
		Long: "pnsim runs a distributed algorithm, one worker per vertex, over one of the bundled\n" +
			"example networks and prints the resulting state graph as Graphviz DOT.",
		SilenceUsage: true,
	}

	root.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "send/receive deadline for the whole run")
	root.PersistentFlags().IntVar(&roundLimit, "round-limit", 0, "stop every worker after this many rounds (0 = unbounded)")
	root.PersistentFlags().BoolVar(&strict, "strict", true, "panic on a stop-absorption violation instead of folding it into the run error")

	root.AddCommand(newBMMCmd(), newIsoCmd(), newMVC3Cmd())
	return root
}

// Execute runs the pnsim command-line tool.
func Execute() error {
	return newRootCmd().Execute()
}

func currentOptions() []simulator.Option {
	opts := []simulator.Option{
		simulator.WithTimeout(timeout),
		simulator.WithStrictMode(strict),
	}
	if roundLimit > 0 {
		opts = append(opts, simulator.WithRoundLimit(roundLimit))
	}
	return opts
}

// runAndPrint builds a Simulator for algo over topo, runs it, and writes
// the resulting state graph to stdout as Graphviz DOT.
func runAndPrint[S pnmodel.State, M pnmodel.Message](topo *network.Topology, algo pnmodel.Algorithm[S, M]) error {
	sim := simulator.New[S, M](topo, algo, currentOptions()...)

	report, err := sim.Run(context.Background())
	if err != nil {
		if report != nil {
			_ = report.Print(os.Stderr, topo)
		}
		return err
	}

	logrus.Infof("%s: %d/%d vertices reached a stopping state", algo.Name(), report.Stopped, report.N)
	return report.Print(os.Stdout, topo)
}
