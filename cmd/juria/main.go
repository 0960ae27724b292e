package main

import (
	"os"

	"juria/cmd/juria/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
