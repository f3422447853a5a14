// Command netsimplex loads a TOML transportation-problem file and drives
// the network-simplex solver to completion (or one step at a time, logging
// every step, with --step) and prints the final objective value.
package main

import (
	"os"

	"github.com/katalvlaran/lvlath/cmd/netsimplex/app"
)

func main() {
	if err := app.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
