package main

import (
	"os"

	"github.com/parsekit/jsondiag/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
