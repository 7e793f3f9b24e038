package main

import (
	"os"

	"github.com/bnema/tstack/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
