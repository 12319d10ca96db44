package errors

import (
	"strings"
	"unicode"
)

// ValidateIdentifier validates a model, element, or relationship identifier.
// Identifiers end up as XML identifier attributes, so the rules are
// intentionally conservative:
//   - No empty identifiers
//   - No control characters or whitespace
//   - Must not start with a digit
//   - Maximum length of 256 characters
func ValidateIdentifier(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "identifier cannot be empty")
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidInput, "identifier too long (max 256 characters)")
	}

	for i, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "identifier %q contains whitespace or control characters", id)
		}
		if i == 0 && unicode.IsDigit(r) {
			return New(ErrCodeInvalidInput, "identifier %q cannot start with a digit", id)
		}
	}

	return nil
}

// ValidateName validates a human-readable element or model name.
// Names are escaped on serialization, so markup characters are fine;
// control characters are not.
func ValidateName(name string) error {
	const maxNameLength = 500
	if len(name) > maxNameLength {
		return New(ErrCodeInvalidInput, "name too long (max %d characters)", maxNameLength)
	}

	for _, r := range name {
		if r != '\t' && unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "name contains invalid control characters")
		}
	}

	if strings.Contains(name, "\x00") {
		return New(ErrCodeInvalidInput, "name contains null bytes")
	}

	return nil
}
