// Package bump implements the version bump engine: the mapping from a
// current semantic version and a requested bump kind to the next version.
//
// The engine is a pure value transformation with no I/O and no error path;
// it is total over well-formed versions. The one non-obvious rule is the
// handling of an existing alpha pre-release: the numeric increment for a
// patch or minor bump happens exactly once, on the first pre-release bump
// (or on a direct release bump), so finishing an alpha sequence with a
// release bump must NOT increment the number again. Apply captures whether
// a counter exists before mutating anything and branches on that.
//
// Each kind also carries presentation metadata (description, glyph, color)
// used only for report output, never for the bump decision.
package bump

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/verup-dev/verup/internal/semver"
)

// Kind is one of the six supported bump operations.
type Kind int

const (
	// Prepatch bumps patch and starts (or advances) an alpha counter.
	Prepatch Kind = iota
	// Patch bumps patch, or finalizes an existing alpha pre-release.
	Patch
	// Preminor bumps minor and starts (or advances) an alpha counter.
	Preminor
	// Minor bumps minor, or finalizes an existing alpha pre-release.
	Minor
	// Major bumps major and fully resets everything below it.
	Major
	// Skip leaves the version unchanged.
	Skip
)

// Kinds lists every bump kind in CLI argument order.
var Kinds = []Kind{Prepatch, Patch, Preminor, Minor, Major, Skip}

// KindNames lists the CLI spellings of every bump kind, in the same order
// as Kinds. Used for argument validation and shell completion.
func KindNames() []string {
	names := make([]string, len(Kinds))
	for i, k := range Kinds {
		names[i] = k.String()
	}
	return names
}

// ParseKind resolves a CLI argument into a bump kind. Matching is exact
// and lowercase; unknown input is an error.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "prepatch":
		return Prepatch, nil
	case "patch":
		return Patch, nil
	case "preminor":
		return Preminor, nil
	case "minor":
		return Minor, nil
	case "major":
		return Major, nil
	case "skip":
		return Skip, nil
	}
	return 0, fmt.Errorf("unknown bump kind: %s", s)
}

// String returns the CLI spelling of the kind.
func (k Kind) String() string {
	switch k {
	case Prepatch:
		return "prepatch"
	case Patch:
		return "patch"
	case Preminor:
		return "preminor"
	case Minor:
		return "minor"
	case Major:
		return "major"
	case Skip:
		return "skip"
	}
	return "unknown"
}

// IsPre reports whether the kind produces an alpha pre-release.
func (k Kind) IsPre() bool {
	return k == Prepatch || k == Preminor
}

// Apply computes the next version for the kind. The transformation is
// deterministic and side-effect free:
//
//  1. build metadata is dropped unconditionally;
//  2. Skip returns immediately - identity in every state;
//  3. the presence of an alpha counter is captured before any mutation;
//  4. pre-release kinds advance the counter, release kinds clear it;
//  5. the numeric triple moves only when no counter existed beforehand,
//     except Major which always resets minor/patch and clears the counter.
//
// An existing counter means the triple was already staged by the bump that
// created the pre-release, so a following Patch/Minor only finalizes it.
func (k Kind) Apply(v semver.Version) semver.Version {
	v = v.ClearBuild()

	// Skip is a self-loop in every state: nothing besides the build
	// metadata ever changes, an alpha counter included.
	if k == Skip {
		return v
	}

	_, hasPre := v.Pre()

	if k.IsPre() {
		v = v.IncPre()
	} else {
		v = v.ClearPre()
	}

	switch k {
	case Patch, Prepatch:
		if !hasPre {
			v = v.IncPatch()
		}
	case Minor, Preminor:
		if !hasPre {
			v = v.IncMinor().ResetPatch()
		} else if k == Minor {
			v = v.ResetPatch()
		}
	case Major:
		v = v.IncMajor().ResetMinor().ResetPatch().ClearPre()
	}

	return v
}

// Description returns the human label for report output.
func (k Kind) Description() string {
	switch k {
	case Major:
		return "major release"
	case Minor:
		return "minor release"
	case Patch:
		return "patch release"
	case Preminor:
		return "pre-minor alpha"
	case Prepatch:
		return "pre-patch alpha"
	case Skip:
		return "skip version bump"
	}
	return "unknown"
}

// Glyph returns the indicator emoji for report output.
func (k Kind) Glyph() string {
	switch k {
	case Major:
		return "🚀"
	case Minor:
		return "✨"
	case Patch:
		return "🔧"
	case Preminor:
		return "🧪"
	case Prepatch:
		return "🔬"
	case Skip:
		return "⏭️"
	}
	return "?"
}

// Color returns the lipgloss color used when rendering the kind description.
// Palette matches the logging styles for consistent terminal output.
func (k Kind) Color() lipgloss.Color {
	switch k {
	case Major:
		return lipgloss.Color("#FF4473") // red
	case Minor:
		return lipgloss.Color("#42E7FF") // blue
	case Patch:
		return lipgloss.Color("#60F281") // green
	case Preminor, Prepatch:
		return lipgloss.Color("#FFE763") // yellow
	}
	return lipgloss.Color("#FFFFFF")
}
