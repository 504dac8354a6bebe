package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// sectionNameRegex matches section and template family names: an ASCII
// letter followed by letters, digits, underscores or dashes.
var sectionNameRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// ValidateName validates a section or template family name.
//
// Names end up both in registry identifiers and in output file names, so the
// rules are conservative:
//   - No empty names
//   - Maximum length of 64 characters
//   - Must start with a letter
//   - Only letters, digits, '_' and '-'
func ValidateName(kind, name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "%s name cannot be empty", kind)
	}

	if len(name) > 64 {
		return New(ErrCodeInvalidName, "%s name too long (max 64 characters)", kind)
	}

	if !sectionNameRegex.MatchString(name) {
		return New(ErrCodeInvalidName, "invalid %s name: %q", kind, name)
	}

	return nil
}

// ValidateDocumentName validates a generated document file name.
// It ensures the name is a simple basename without path components.
func ValidateDocumentName(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidPath, "document name cannot be empty")
	}

	if strings.ContainsAny(filename, "/\\") {
		return New(ErrCodeInvalidPath, "document name cannot contain path separators")
	}

	if strings.HasPrefix(filename, ".") {
		return New(ErrCodeInvalidPath, "document name cannot be a hidden file")
	}

	for _, r := range filename {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "document name contains invalid characters")
		}
	}

	return nil
}
