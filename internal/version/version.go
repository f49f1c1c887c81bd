// Package version provides centralized version information for verup.
// The constant follows semantic versioning (semver) conventions and is
// what the tool reports for its own --version flag; it is unrelated to
// the manifest versions the tool rewrites.
package version

// VerupVersion holds the current verup CLI version.
// Format: major.minor.patch[-prerelease][+build]
const VerupVersion = "0.3.0"
