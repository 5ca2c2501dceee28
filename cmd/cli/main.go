// Package main - Entry point for the souq CLI
package main

import (
	"os"

	"souq-core/cmd/cli/cmd"
	"souq-core/internal/logging"
)

func main() {
	defer logging.Sync()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
