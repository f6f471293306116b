package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// viewNameRegex matches names usable as scene identifiers and DOT node IDs.
var viewNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.-]*$`)

// ValidateViewName validates a view name declared in a scene.
//
// The rules are intentionally conservative:
//   - No empty names
//   - No control characters or whitespace
//   - Must start with a letter or underscore
//   - Maximum length of 64 characters
func ValidateViewName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "view name cannot be empty")
	}

	const maxLen = 64
	if len(name) > maxLen {
		return New(ErrCodeInvalidName, "view name too long (max %d characters)", maxLen)
	}

	for _, r := range name {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidName, "view name contains invalid characters: %q", name)
		}
	}

	if !viewNameRegex.MatchString(name) {
		return New(ErrCodeInvalidName, "invalid view name: %q", name)
	}

	return nil
}

// ValidateOutputFormat checks that format is one of allowed (case-insensitive).
func ValidateOutputFormat(format string, allowed ...string) error {
	if format == "" {
		return New(ErrCodeInvalidFormat, "output format cannot be empty")
	}
	for _, a := range allowed {
		if strings.EqualFold(format, a) {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "unsupported format %q (want one of %s)", format, strings.Join(allowed, ", "))
}
