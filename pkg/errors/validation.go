package errors

import (
	"math"
	"strings"
	"unicode"
)

// maxIDLength bounds element IDs; renderers turn them into resource names.
const maxIDLength = 256

// ValidateElementID validates an element identifier.
//
// Validation rules:
//   - No empty IDs
//   - Maximum length of 256 characters
//   - No control characters or whitespace
//   - No "|" (reserved as the gravity token separator)
func ValidateElementID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidElement, "element ID cannot be empty")
	}

	if len(id) > maxIDLength {
		return New(ErrCodeInvalidElement, "element ID too long (max %d characters)", maxIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidElement, "element ID %q contains whitespace or control characters", id)
		}
	}

	if strings.Contains(id, "|") {
		return New(ErrCodeInvalidElement, "element ID %q contains reserved character '|'", id)
	}

	return nil
}

// ValidateFinite rejects NaN and infinite values for the named field.
func ValidateFinite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidGeometry, "%s is not a finite number", field)
	}
	return nil
}

// ValidateBias checks that a bias lies in [0, 1].
func ValidateBias(field string, v float64) error {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return New(ErrCodeInvalidBias, "%s must be between 0 and 1, got %v", field, v)
	}
	return nil
}

// ValidateTolerance checks an edge-matching tolerance: finite and not
// negative.
func ValidateTolerance(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return New(ErrCodeInvalidInput, "tolerance must be a finite non-negative number, got %v", v)
	}
	return nil
}

// ValidatePath validates a file path supplied on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// ValidateURI checks that a backend connection string uses one of the
// allowed schemes, e.g. ValidateURI(addr, "redis", "rediss").
func ValidateURI(raw string, schemes ...string) error {
	if raw == "" {
		return New(ErrCodeInvalidConfig, "URI cannot be empty")
	}

	for _, s := range schemes {
		if strings.HasPrefix(raw, s+"://") {
			return nil
		}
	}
	return New(ErrCodeInvalidConfig, "URI must use one of the schemes %s", strings.Join(schemes, ", "))
}
