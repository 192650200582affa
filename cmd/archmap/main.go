// Package main is the archmap command line entry point.
package main

import (
	"os"

	"github.com/archmap-labs/archmap/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
