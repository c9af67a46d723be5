package main

import (
	"os"

	"github.com/rustyeddy/strategyrun/cmd/strategyrun/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
