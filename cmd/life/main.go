package main

import (
	"fmt"
	"os"

	"torus-life/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "life:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
