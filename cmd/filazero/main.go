package main

import (
	"os"

	"filazero/cmd/filazero/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
