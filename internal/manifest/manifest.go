// Package manifest reads the package version out of a TOML manifest and
// writes the bumped version back in place.
//
// Parsing goes through pelletier/go-toml to locate the version in either
// the [package] section or, for workspaces, [workspace.package]. Write-back
// deliberately does NOT re-encode the document: it replaces the first
// literal `<field> = "<old>"` occurrence in the raw file text so that
// comments, ordering, and formatting in the rest of the manifest survive
// untouched. The file is only ever written after the full new version
// string has been computed, so a failed bump never leaves a partial write.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Extraction failures, each naming the specific missing or unusable layer.
var (
	// ErrNoWorkspace means --workspace was given but the manifest has no
	// workspace section.
	ErrNoWorkspace = errors.New("expected to find a workspace section in the manifest")
	// ErrNoPackage means the required package section is absent.
	ErrNoPackage = errors.New("expected to find a package section in the manifest")
	// ErrNoVersion means the package section carries no version field.
	ErrNoVersion = errors.New("expected to find a package version in the package section")
	// ErrInheritedVersion means the package version delegates to a
	// workspace (version.workspace = true) and must be bumped there.
	ErrInheritedVersion = errors.New("the package version is inherited from a workspace (use --workspace)")
)

// packageSection models the subset of [package] the tool cares about.
// Version stays untyped: a plain string is a usable version, while a table
// value ({ workspace = true }) marks workspace inheritance.
type packageSection struct {
	Name    string `toml:"name"`
	Version any    `toml:"version"`
}

type workspaceSection struct {
	Package *packageSection `toml:"package"`
}

type document struct {
	Package   *packageSection   `toml:"package"`
	Workspace *workspaceSection `toml:"workspace"`
}

// Manifest is a loaded manifest file: the parsed document plus the raw
// text that write-back substitutes into.
type Manifest struct {
	path string
	raw  string
	doc  document
}

// Load reads and parses the manifest at path. Both I/O and TOML syntax
// failures are fatal to the caller.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	return &Manifest{path: path, raw: string(data), doc: doc}, nil
}

// Path returns the manifest file path.
func (m *Manifest) Path() string {
	return m.path
}

// Version extracts the current version string. In workspace mode it comes
// from [workspace.package]; otherwise from [package], where a non-string
// value means the version is inherited from a workspace.
func (m *Manifest) Version(workspace bool) (string, error) {
	if workspace {
		if m.doc.Workspace == nil {
			return "", ErrNoWorkspace
		}
		if m.doc.Workspace.Package == nil {
			return "", fmt.Errorf("workspace: %w", ErrNoPackage)
		}
		version, ok := m.doc.Workspace.Package.Version.(string)
		if !ok {
			return "", fmt.Errorf("workspace: %w", ErrNoVersion)
		}
		return version, nil
	}

	if m.doc.Package == nil {
		return "", ErrNoPackage
	}
	if m.doc.Package.Version == nil {
		return "", ErrNoVersion
	}
	version, ok := m.doc.Package.Version.(string)
	if !ok {
		return "", ErrInheritedVersion
	}
	return version, nil
}

// FieldName is the displayed name of the version field being rewritten:
// "version" for a standalone package, "package.version" for a workspace.
func FieldName(workspace bool) string {
	if workspace {
		return "package.version"
	}
	return "version"
}

// Rewrite substitutes the first literal `<field> = "<old>"` occurrence with
// the new version and writes the file. A missing occurrence leaves the file
// byte-identical; that is the caller's contract with hand-edited manifests.
func (m *Manifest) Rewrite(workspace bool, oldVersion, newVersion string) error {
	field := FieldName(workspace)
	updated := strings.Replace(m.raw,
		fmt.Sprintf("%s = %q", field, oldVersion),
		fmt.Sprintf("%s = %q", field, newVersion),
		1)

	if err := os.WriteFile(m.path, []byte(updated), 0o644); err != nil {
		return fmt.Errorf("failed to write manifest %s: %w", m.path, err)
	}
	m.raw = updated
	return nil
}
