// Command recommend reads a graph description from stdin and prints the
// network structure and per-user friend recommendations to stdout.
package main

import (
	"fmt"
	"os"

	"sociograph/interfaces/cli"
)

func main() {
	if err := cli.NewDriver().Run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "recommend: %v\n", err)
		os.Exit(1)
	}
}
