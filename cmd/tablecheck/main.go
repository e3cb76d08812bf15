// Package main provides the CLI entry point for tablecheck.
package main

import (
	"os"

	"github.com/leapstack-labs/tablecheck/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
