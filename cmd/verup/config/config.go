// Package config provides configuration management for the verup CLI.
package config

import "github.com/verup-dev/verup/internal/version"

const (
	// DefaultManifestPath is where the manifest is expected when --path
	// is not given.
	DefaultManifestPath = "Cargo.toml"
)

// Version returns the current verup CLI version from the centralized version package
var Version = version.VerupVersion

// Global holds the global CLI configuration
var Global struct {
	Path        string // Path to the manifest file to bump
	Workspace   bool   // Expect a workspace rather than a normal package
	FromGit     bool   // Infer the bump kind from a commit message file
	MessageFile string // Path to the commit message file for inference
	Quiet       bool   // Suppress all output except errors
	LogLevel    string // Log level for CLI operations
}
