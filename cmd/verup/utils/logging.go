// Package utils provides utility functions for the verup CLI.
// This file contains logging setup for CLI command execution.
package utils

import (
	"os"

	"github.com/verup-dev/verup/cmd/verup/config"
	"github.com/verup-dev/verup/internal/logging"
)

// SetupLogging configures CLI logging behavior based on environment and config.
// Enables debug output when DEBUG=true, honors an explicit --log-level, and
// otherwise suppresses everything below ERROR so normal runs print only the
// bump report.
func SetupLogging() {
	if os.Getenv("DEBUG") == "true" {
		// Show debug output - restore normal logging and enable DEBUG level
		logging.RestoreOutput()
		logging.SetLevel("DEBUG")
		return
	}

	if config.Global.LogLevel != "ERROR" {
		// An explicit log level opts back into pipeline logging
		logging.RestoreOutput()
		logging.SetLevel(config.Global.LogLevel)
		return
	}

	// Default: only errors reach the terminal
	logging.SuppressOutput()
}
