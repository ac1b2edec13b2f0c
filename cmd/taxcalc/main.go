// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"

	"taxcalc/cmd/cli"
	"taxcalc/cmd/tui"
)

func main() {
	// If no arguments (or just the program name) are provided, run the
	// interactive wizard. Otherwise, run the CLI (which will handle the
	// arguments).
	if len(os.Args) <= 1 {
		tui.RunTUI()
	} else {
		cli.RunCLI()
	}
}
