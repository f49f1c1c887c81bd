// Package main provides the entry point for the verup CLI tool.
//
// verup is a one-shot manifest version bumper: it reads the current
// semantic version out of a TOML manifest, computes the next version for a
// requested bump kind, and rewrites the version field in place. The bump
// kind comes from the command line, from a git commit message file, or
// defaults to a prepatch alpha.
//
// INITIALIZATION FLOW:
//  1. Command structure setup on the root command
//  2. Global flag configuration bound to the config package
//  3. Flag validation wired through PersistentPreRunE
//  4. Handler assignment linking the root command to the bump pipeline
//  5. Command execution with proper error handling and exit codes
package main

import (
	"os"

	"github.com/verup-dev/verup/cmd/verup/commands"
	"github.com/verup-dev/verup/cmd/verup/config"
	"github.com/verup-dev/verup/cmd/verup/handlers"
)

func init() {
	// Get root command from commands package
	rootCmd := commands.RootCmd

	// Set version and validation
	rootCmd.Version = config.Version
	rootCmd.PersistentPreRunE = config.ValidateGlobalFlags

	// Setup global flags
	commands.SetupGlobalFlags(rootCmd,
		&config.Global.Path, &config.Global.Workspace,
		&config.Global.FromGit, &config.Global.MessageFile,
		&config.Global.Quiet, &config.Global.LogLevel,
		config.DefaultManifestPath)

	// Assign the bump handler
	rootCmd.RunE = handlers.HandleBump
}

func main() {
	if err := commands.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
