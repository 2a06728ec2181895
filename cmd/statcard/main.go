package main

import (
	"os"

	"github.com/wonny/statcard/cmd/statcard/commands"
)

// main is the entry point for the statcard CLI
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
