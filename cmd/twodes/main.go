package main

import (
	"os"

	"twodes/cmd/twodes/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
