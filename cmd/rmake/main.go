// Command rmake is a parallel, incremental build orchestrator driven by a
// Makefile-like rule file.
package main

import (
	"os"

	"go.trai.ch/rmake/cmd/rmake/commands"
	"go.trai.ch/rmake/internal/adapters/pool"
)

func main() {
	os.Exit(run(os.Args))
}

// run is split out from main so tests can drive the whole CLI without
// exec'ing a subprocess — except for the worker path itself, which must be
// its own process and is never reached from tests that don't set WorkerArg.
func run(args []string) int {
	if len(args) > 1 && args[1] == pool.WorkerArg {
		if err := pool.RunWorker(os.Stdin, os.Stdout); err != nil {
			return 1
		}
		return 0
	}

	return commands.New().Execute(args[1:])
}
