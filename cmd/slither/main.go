package main

import (
	"os"

	"github.com/slitherlang/slither/cmd/slither/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
