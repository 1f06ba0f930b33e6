package main

import (
	"os"

	"github.com/lyneport/tlofgen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
