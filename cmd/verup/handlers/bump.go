// Package handlers provides the command execution logic for verup.
//
// The single bump handler coordinates the external collaborators around the
// pure bump engine: manifest loading and version extraction, bump kind
// resolution (explicit argument, commit-message inference, or the prepatch
// default), applying the bump, and writing the result back. The handler
// follows the standard pattern:
//   - cobra.Command RunE function signature for CLI integration
//   - standardized error handling and logging using the logging package
//   - user-facing output through the display package
//
// Errors are logged with full detail and returned as concise messages for
// the CLI to surface with a non-zero exit. The manifest is only written
// after the complete new version string has been computed, so no failure
// path leaves a partially rewritten file.
package handlers

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verup-dev/verup/cmd/verup/config"
	"github.com/verup-dev/verup/cmd/verup/display"
	"github.com/verup-dev/verup/cmd/verup/utils"
	"github.com/verup-dev/verup/internal/bump"
	"github.com/verup-dev/verup/internal/gitmsg"
	"github.com/verup-dev/verup/internal/logging"
	"github.com/verup-dev/verup/internal/manifest"
	"github.com/verup-dev/verup/internal/semver"
)

// HandleBump handles the root command: load the manifest, resolve the bump
// kind, apply it, and rewrite the manifest. Skip short-circuits after the
// report without touching the file.
func HandleBump(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	logging.Info("Loading manifest: %s", config.Global.Path)
	m, err := manifest.Load(config.Global.Path)
	if err != nil {
		logging.Error("Failed to load manifest: %v", err)
		return fmt.Errorf("failed to load manifest %s", config.Global.Path)
	}

	current, err := m.Version(config.Global.Workspace)
	if err != nil {
		logging.Error("Failed to locate version in %s: %v", config.Global.Path, err)
		return err
	}

	version, err := semver.Parse(current)
	if err != nil {
		logging.Error("Failed to parse manifest version: %v", err)
		return err
	}

	kind, err := resolveKind(args)
	if err != nil {
		return err
	}

	if kind == bump.Skip {
		display.ShowSkip(kind)
		return nil
	}

	next := kind.Apply(version).String()
	display.ShowBump(kind, current, next)

	if err := m.Rewrite(config.Global.Workspace, current, next); err != nil {
		logging.Error("Failed to update manifest: %v", err)
		return fmt.Errorf("failed to update manifest %s", config.Global.Path)
	}
	display.ShowUpdated(m.Path())

	logging.Success("Bumped %s from %s to %s",
		manifest.FieldName(config.Global.Workspace), current, next)
	return nil
}

// resolveKind picks the bump kind with fixed precedence: explicit argument
// first, then commit-message inference when enabled, then the prepatch
// default. Inference failures are not errors - a missing or tagless message
// file just falls through to the default.
func resolveKind(args []string) (bump.Kind, error) {
	if len(args) > 0 {
		kind, err := bump.ParseKind(args[0])
		if err != nil {
			logging.Error("Invalid bump kind '%s': %v", args[0], err)
			return 0, err
		}
		return kind, nil
	}

	if config.Global.FromGit && config.Global.MessageFile != "" {
		if kind, ok := gitmsg.Infer(config.Global.MessageFile); ok {
			logging.Info("Inferred %s bump from %s", kind, config.Global.MessageFile)
			return kind, nil
		}
		logging.Debug("No bump tag found in %s", config.Global.MessageFile)
	}

	return bump.Prepatch, nil
}
