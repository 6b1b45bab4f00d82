// Command transpile is the CLI front end for the Swift-to-Kotlin semantic
// rewriting pipeline: it owns reading fixtures and flags from the shell
// and hands everything else to internal/pipeline.
package main

import (
	"os"

	"github.com/swiftkt/transpile/cmd/transpile/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
