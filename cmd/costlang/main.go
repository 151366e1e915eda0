package main

import (
	"os"

	"github.com/graphcost/costlang/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		// Commands print their own diagnostics through the output
		// formatter; only the exit code is left to propagate.
		os.Exit(cli.GetExitCode(err))
	}
}
