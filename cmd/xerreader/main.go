// Command xerreader parses Primavera P6 XER (or MS-Project XML) exports,
// runs the CPM engine, and reports DCMA-style schedule quality metrics.
package main

import (
	"os"

	"github.com/avireddy0/XERReader/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
