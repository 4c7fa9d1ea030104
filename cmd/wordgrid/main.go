// wordgrid counts word occurrences in a letter grid.
// Single binary: search, locate, watch, with a result cache and run history.
package main

import (
	"os"

	"github.com/corey/wordgrid/cmd/wordgrid/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
