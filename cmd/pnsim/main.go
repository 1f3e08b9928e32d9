// Command pnsim runs a Port Numbering algorithm over one of the bundled
// example networks and prints the resulting state graph as Graphviz DOT.
package main

import (
	"fmt"
	"os"

	"github.com/twelho/pnsim/cmd/pnsim/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
