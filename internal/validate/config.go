// Package validate provides configuration validation utilities for verup.
//
// Implements the common validation patterns used by the CLI config package
// to ensure consistency and reduce duplication. All functions leverage the
// go-playground/validator library for standardized validation behavior.
//
// VALIDATION UTILITIES:
//   - Field validation: generic validator-tag checking for single values
//   - String validation: required field and non-empty string checking
//   - Choice validation: membership in a closed set of allowed values
//
// These utilities replace manual validation code scattered across the CLI
// with centralized, consistent validation using the validator library's
// built-in tags and error handling.
package validate

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// Global validator instance using built-in validations
	validate *validator.Validate
)

func init() {
	validate = validator.New()
	// Using built-in validators: required, oneof - no custom registration needed
}

// ValidateField validates a single value against a validator tag expression.
// Supports all built-in validation tags including required fields, numeric
// ranges, and oneof membership checks.
//
// Example: ValidateField("patch", "oneof=prepatch patch preminor minor major skip")
func ValidateField(value interface{}, tag string) error {
	return validate.Var(value, tag)
}

// ValidateRequiredString validates that a string field is not empty.
// Uses the validator library for consistent error handling across config
// validation, with the field name included in the error message.
func ValidateRequiredString(value, fieldName string) error {
	if err := ValidateField(value, "required"); err != nil {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}
	return nil
}

// ValidateChoice validates that a value is one of a closed set of allowed
// strings, using the validator library's oneof tag. Essential for CLI
// arguments that select from fixed vocabularies like bump kinds.
func ValidateChoice(value, fieldName string, allowed []string) error {
	tag := "oneof=" + strings.Join(allowed, " ")
	if err := ValidateField(value, tag); err != nil {
		return fmt.Errorf("invalid %s %q - valid: %s", fieldName, value, strings.Join(allowed, ", "))
	}
	return nil
}
