// Package semver provides the semantic version value used by the bump engine.
//
// Versions are parsed and serialized through the blang/semver library, wrapped
// in an immutable value type with functional-update helpers over the numeric
// fields and the pre-release counter. Callers never observe in-place mutation:
// every setter returns a new value and leaves the receiver untouched.
//
// PRE-RELEASE COUNTER:
// Only pre-release text of the exact form "alpha.N" (numeric N >= 0) is
// recognized as a counter. Anything else - a bare "alpha", "beta.1", or
// "alpha.rc" - is treated as no counter at all. This keeps malformed or
// foreign pre-release tags inert instead of turning them into errors.
//
// Build metadata parses and serializes normally but is dropped by the bump
// engine before any other work; ClearBuild exists for that single purpose.
package semver

import (
	"fmt"

	"github.com/blang/semver/v4"
)

// Version is an immutable semantic version value. The zero Version is "0.0.0".
type Version struct {
	v semver.Version
}

// Parse constructs a Version from a dotted-triple version string with
// optional "-prerelease" and "+build" suffixes. Malformed input returns
// an error wrapping the underlying parse failure.
func Parse(s string) (Version, error) {
	parsed, err := semver.Parse(s)
	if err != nil {
		return Version{}, fmt.Errorf("invalid semantic version %q: %w", s, err)
	}
	return Version{v: parsed}, nil
}

// MustParse is Parse for trusted literals; it panics on malformed input.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the canonical "MAJOR.MINOR.PATCH[-PRERELEASE][+BUILD]" form.
func (v Version) String() string {
	return v.v.String()
}

// Major returns the major component.
func (v Version) Major() uint64 { return v.v.Major }

// Minor returns the minor component.
func (v Version) Minor() uint64 { return v.v.Minor }

// Patch returns the patch component.
func (v Version) Patch() uint64 { return v.v.Patch }

// WithMajor returns a copy with the major component set to n.
func (v Version) WithMajor(n uint64) Version {
	v.v.Major = n
	return v
}

// WithMinor returns a copy with the minor component set to n.
func (v Version) WithMinor(n uint64) Version {
	v.v.Minor = n
	return v
}

// WithPatch returns a copy with the patch component set to n.
func (v Version) WithPatch(n uint64) Version {
	v.v.Patch = n
	return v
}

// IncMajor returns a copy with the major component incremented by one.
func (v Version) IncMajor() Version { return v.WithMajor(v.Major() + 1) }

// IncMinor returns a copy with the minor component incremented by one.
func (v Version) IncMinor() Version { return v.WithMinor(v.Minor() + 1) }

// IncPatch returns a copy with the patch component incremented by one.
func (v Version) IncPatch() Version { return v.WithPatch(v.Patch() + 1) }

// ResetMajor returns a copy with the major component set to zero.
func (v Version) ResetMajor() Version { return v.WithMajor(0) }

// ResetMinor returns a copy with the minor component set to zero.
func (v Version) ResetMinor() Version { return v.WithMinor(0) }

// ResetPatch returns a copy with the patch component set to zero.
func (v Version) ResetPatch() Version { return v.WithPatch(0) }

// Pre returns the alpha pre-release counter and whether one is present.
// The counter is present only when the pre-release identifiers are exactly
// the pair "alpha" followed by a numeric identifier.
func (v Version) Pre() (uint64, bool) {
	if len(v.v.Pre) != 2 {
		return 0, false
	}
	if v.v.Pre[0].IsNum || v.v.Pre[0].VersionStr != "alpha" {
		return 0, false
	}
	if !v.v.Pre[1].IsNum {
		return 0, false
	}
	return v.v.Pre[1].VersionNum, true
}

// WithPre returns a copy whose pre-release text is "alpha.n", replacing any
// existing pre-release identifiers.
func (v Version) WithPre(n uint64) Version {
	v.v.Pre = []semver.PRVersion{
		{VersionStr: "alpha"},
		{VersionNum: n, IsNum: true},
	}
	return v
}

// ClearPre returns a copy with all pre-release text removed.
func (v Version) ClearPre() Version {
	v.v.Pre = nil
	return v
}

// IncPre returns a copy with the alpha counter advanced: counter+1 when a
// counter is present, otherwise a fresh "alpha.0". A non-alpha pre-release
// counts as absent and is overwritten.
func (v Version) IncPre() Version {
	if n, ok := v.Pre(); ok {
		return v.WithPre(n + 1)
	}
	return v.WithPre(0)
}

// ClearBuild returns a copy with all build metadata removed.
func (v Version) ClearBuild() Version {
	v.v.Build = nil
	return v
}
