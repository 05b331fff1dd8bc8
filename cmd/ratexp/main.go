package main

import (
	"os"

	"github.com/govalues/rational/cmd/ratexp/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
