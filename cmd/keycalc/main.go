// Package main is the entry point for keycalc.
package main

import (
	"os"

	"github.com/dshills/keycalc/internal/cli"
	"github.com/dshills/keycalc/internal/logging"
)

// main is the entry point for the keycalc binary.
func main() {
	logger := logging.NewLogger(os.Stderr, logging.LevelInfo)
	if err := cli.Execute(os.Args[1:], logger); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
