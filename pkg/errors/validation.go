package errors

import (
	"math"
	"strings"
	"unicode"
)

// maxShapeIDLength bounds identifiers coming from host documents and model output.
const maxShapeIDLength = 256

// ValidateShapeID validates an opaque shape identifier.
//
// Host applications hand out arbitrary strings, so the rules are minimal:
//   - No empty identifiers
//   - No control characters (they break logs and terminal output)
//   - Maximum length of 256 characters
func ValidateShapeID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidGeometry, "shape id cannot be empty")
	}

	if len(id) > maxShapeIDLength {
		return New(ErrCodeInvalidGeometry, "shape id too long (max %d characters)", maxShapeIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidGeometry, "shape id %q contains control characters", id)
		}
	}

	return nil
}

// ValidateFinite rejects NaN and infinite values for the named field.
func ValidateFinite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidGeometry, "%s must be finite, got %v", field, v)
	}
	return nil
}

// ValidateSize rejects non-finite or negative sizes for the named field.
func ValidateSize(field string, v float64) error {
	if err := ValidateFinite(field, v); err != nil {
		return err
	}
	if v < 0 {
		return New(ErrCodeInvalidGeometry, "%s must be >= 0, got %v", field, v)
	}
	return nil
}

// ValidatePath validates a user-supplied file path.
//
// Validation rules:
//   - Path cannot be empty or whitespace
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if strings.TrimSpace(path) == "" {
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
