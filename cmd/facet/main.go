package main

import (
	"os"

	"facet/cmd/facet/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
