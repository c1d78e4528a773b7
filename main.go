package main

import (
	"os"

	"github.com/potomac-dev/potomac/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
