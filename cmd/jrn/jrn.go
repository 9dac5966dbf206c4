package main

import (
	"os"

	"tableflip.dev/jrn/pkg/commands"
)

func main() {
	// The command has already reported the error.
	if err := commands.New().Execute(); err != nil {
		os.Exit(1)
	}
}
