package main

// Entry point: runs the Cobra root command and maps failure to exit code 1.

import (
	"fmt"
	"os"

	"royalty-viz/cmd/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
