// Package config provides configuration management for the verup CLI.
package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verup-dev/verup/internal/bump"
	"github.com/verup-dev/verup/internal/logging"
	"github.com/verup-dev/verup/internal/validate"
)

// ValidateGlobalFlags validates all global flags before running any command
func ValidateGlobalFlags(cmd *cobra.Command, args []string) error {
	if err := ValidateManifestPath(); err != nil {
		return err
	}

	if err := ValidateLogLevel(); err != nil {
		return err
	}

	if err := ValidateBumpArg(args); err != nil {
		return err
	}

	return nil
}

// ValidateManifestPath validates the --path flag
func ValidateManifestPath() error {
	if err := validate.ValidateRequiredString(Global.Path, "manifest path"); err != nil {
		logging.Error("Invalid manifest path: %v", err)
		return fmt.Errorf("manifest path cannot be empty")
	}
	return nil
}

// ValidateLogLevel validates the --log-level flag
func ValidateLogLevel() error {
	if err := logging.ValidateLogLevel(Global.LogLevel); err != nil {
		logging.Error("Invalid log level '%s' - valid levels are: DEBUG, INFO, WARN, ERROR", Global.LogLevel)
		return fmt.Errorf("invalid log level - valid: DEBUG, INFO, WARN, ERROR")
	}
	return nil
}

// ValidateBumpArg validates the optional positional bump kind argument
func ValidateBumpArg(args []string) error {
	if len(args) == 0 {
		return nil
	}
	if err := validate.ValidateChoice(args[0], "bump kind", bump.KindNames()); err != nil {
		logging.Error("Invalid bump kind '%s': %v", args[0], err)
		return err
	}
	return nil
}
