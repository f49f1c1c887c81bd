// Package commands provides the command tree for the verup CLI.
//
// verup is a single-command tool: the root command does all the work and
// takes an optional positional bump kind. The command structure still
// follows the standard layout with flag setup separated from handler
// assignment so the entry point wires everything together in one place.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/verup-dev/verup/internal/bump"
)

// Root command
var RootCmd = &cobra.Command{
	Use:   "verup [bump]",
	Short: "Bump the package version in a TOML manifest",
	Long: `verup computes the next semantic version for a package and rewrites
the version field of its TOML manifest in place.

The bump kind can be given explicitly, inferred from a git commit message
file, or left to the prepatch default. Pre-release bumps stage the next
version as an "alpha.N" build; the matching release bump then finalizes it
without incrementing the number a second time.`,
	SilenceUsage: true,
	Args:         cobra.MaximumNArgs(1),
	ValidArgs:    bump.KindNames(),
	Example: `  # Stage the next patch as an alpha pre-release (the default)
  verup

  # Advance the alpha counter again
  verup prepatch

  # Finalize the staged version
  verup patch

  # Cut a minor or major release directly
  verup minor
  verup major

  # Infer the bump kind from a commit message file
  verup --from-git --message-file .git/COMMIT_EDITMSG

  # Bump a workspace manifest
  verup --workspace minor

  # Bump a manifest somewhere else
  verup --path crates/core/Cargo.toml patch

  # Suppress the report output
  verup --quiet patch`,
}

// SetupGlobalFlags configures all global flags
func SetupGlobalFlags(rootCmd *cobra.Command, pathPtr *string, workspacePtr *bool,
	fromGitPtr *bool, messageFilePtr *string, quietPtr *bool, logLevelPtr *string,
	defaultPath string,
) {
	rootCmd.Flags().StringVar(pathPtr, "path", defaultPath,
		"Path to the manifest file")
	rootCmd.Flags().BoolVar(workspacePtr, "workspace", false,
		"Expect to find a workspace rather than a normal package")
	rootCmd.Flags().BoolVar(fromGitPtr, "from-git", false,
		"Infer the version bump from a git commit message file")
	rootCmd.Flags().StringVar(messageFilePtr, "message-file", "",
		"Path to the commit message file")
	rootCmd.Flags().BoolVarP(quietPtr, "quiet", "q", false,
		"Suppress all output except errors")
	rootCmd.Flags().StringVar(logLevelPtr, "log-level", "ERROR",
		"Log level: DEBUG, INFO, WARN, ERROR")
}
