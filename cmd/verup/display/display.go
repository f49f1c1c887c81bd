// Package display provides output formatting for the verup CLI.
//
// This package renders the user-facing report: the version bump line
// (glyph, old and new version, kind description colored per kind) and the
// update confirmation. All functions respect the global quiet flag so
// scripting callers can silence everything except errors, and none of the
// styling feeds back into the bump decision.
package display

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/verup-dev/verup/cmd/verup/config"
	"github.com/verup-dev/verup/internal/bump"
)

var (
	labelStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#42E7FF"))
	oldVersionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BE9FD"))
	arrowStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#F8F8F2"))
	newVersionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#60F281"))
	checkStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#60F281"))
	pathStyle       = lipgloss.NewStyle().Bold(true)
)

// ShowBump prints the version bump report line: glyph, old version, new
// version, and the kind description in the kind's color.
func ShowBump(kind bump.Kind, oldVersion, newVersion string) {
	if config.Global.Quiet {
		return
	}
	kindStyle := lipgloss.NewStyle().Foreground(kind.Color())
	fmt.Printf("%s %s %s %s %s %s\n",
		kind.Glyph(),
		labelStyle.Render("Version bump:"),
		oldVersionStyle.Render(oldVersion),
		arrowStyle.Render("→"),
		newVersionStyle.Render(newVersion),
		kindStyle.Render("("+kind.Description()+")"))
}

// ShowSkip prints the skip notice. No version or file change follows it.
func ShowSkip(kind bump.Kind) {
	if config.Global.Quiet {
		return
	}
	kindStyle := lipgloss.NewStyle().Foreground(kind.Color())
	fmt.Printf("%s %s\n", kind.Glyph(), kindStyle.Render(kind.Description()))
}

// ShowUpdated prints the write-back confirmation for the manifest path.
func ShowUpdated(path string) {
	if config.Global.Quiet {
		return
	}
	fmt.Printf("%s Updated %s\n", checkStyle.Render("✓"), pathStyle.Render(path))
}
