package main

import (
	"os"

	"github.com/levtools/levcalc/cmd/levcalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
