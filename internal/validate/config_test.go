package validate

import (
	"testing"
)

// TestValidateRequiredString tests required string validation
func TestValidateRequiredString(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		fieldName   string
		expectError bool
	}{
		{
			name:        "non-empty string",
			value:       "Cargo.toml",
			fieldName:   "manifest path",
			expectError: false,
		},
		{
			name:        "empty string",
			value:       "",
			fieldName:   "manifest path",
			expectError: true,
		},
		{
			name:        "whitespace is not empty",
			value:       " ",
			fieldName:   "manifest path",
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequiredString(tt.value, tt.fieldName)
			if tt.expectError && err == nil {
				t.Errorf("Expected error for value %q but got none", tt.value)
			}
			if !tt.expectError && err != nil {
				t.Errorf("Expected no error for value %q, got: %v", tt.value, err)
			}
		})
	}
}

// TestValidateChoice tests closed-set membership validation
func TestValidateChoice(t *testing.T) {
	kinds := []string{"prepatch", "patch", "preminor", "minor", "major", "skip"}

	tests := []struct {
		name        string
		value       string
		expectError bool
	}{
		{name: "valid patch", value: "patch", expectError: false},
		{name: "valid skip", value: "skip", expectError: false},
		{name: "valid prepatch", value: "prepatch", expectError: false},
		{name: "unknown kind", value: "premajor", expectError: true},
		{name: "uppercase rejected", value: "Patch", expectError: true},
		{name: "empty rejected", value: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateChoice(tt.value, "bump kind", kinds)
			if tt.expectError && err == nil {
				t.Errorf("Expected error for value %q but got none", tt.value)
			}
			if !tt.expectError && err != nil {
				t.Errorf("Expected no error for value %q, got: %v", tt.value, err)
			}
		})
	}
}
