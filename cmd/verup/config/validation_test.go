package config

import (
	"testing"
)

// TestValidateManifestPath tests the --path flag validation
func TestValidateManifestPath(t *testing.T) {
	originalPath := Global.Path
	defer func() { Global.Path = originalPath }()

	tests := []struct {
		name        string
		path        string
		expectError bool
	}{
		{name: "default path", path: DefaultManifestPath, expectError: false},
		{name: "nested path", path: "crates/core/Cargo.toml", expectError: false},
		{name: "empty path", path: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Global.Path = tt.path
			err := ValidateManifestPath()
			if tt.expectError && err == nil {
				t.Errorf("Expected error for path %q but got none", tt.path)
			}
			if !tt.expectError && err != nil {
				t.Errorf("Expected no error for path %q, got: %v", tt.path, err)
			}
		})
	}
}

// TestValidateLogLevel tests the --log-level flag validation
func TestValidateLogLevel(t *testing.T) {
	originalLevel := Global.LogLevel
	defer func() { Global.LogLevel = originalLevel }()

	tests := []struct {
		name        string
		level       string
		expectError bool
	}{
		{name: "error level", level: "ERROR", expectError: false},
		{name: "debug level", level: "DEBUG", expectError: false},
		{name: "lowercase rejected", level: "error", expectError: true},
		{name: "unknown level", level: "VERBOSE", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Global.LogLevel = tt.level
			err := ValidateLogLevel()
			if tt.expectError && err == nil {
				t.Errorf("Expected error for level %q but got none", tt.level)
			}
			if !tt.expectError && err != nil {
				t.Errorf("Expected no error for level %q, got: %v", tt.level, err)
			}
		})
	}
}

// TestValidateBumpArg tests the positional bump kind validation
func TestValidateBumpArg(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expectError bool
	}{
		{name: "no argument", args: nil, expectError: false},
		{name: "prepatch", args: []string{"prepatch"}, expectError: false},
		{name: "patch", args: []string{"patch"}, expectError: false},
		{name: "preminor", args: []string{"preminor"}, expectError: false},
		{name: "minor", args: []string{"minor"}, expectError: false},
		{name: "major", args: []string{"major"}, expectError: false},
		{name: "skip", args: []string{"skip"}, expectError: false},
		{name: "unknown kind", args: []string{"premajor"}, expectError: true},
		{name: "uppercase rejected", args: []string{"Major"}, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBumpArg(tt.args)
			if tt.expectError && err == nil {
				t.Errorf("Expected error for args %v but got none", tt.args)
			}
			if !tt.expectError && err != nil {
				t.Errorf("Expected no error for args %v, got: %v", tt.args, err)
			}
		})
	}
}
