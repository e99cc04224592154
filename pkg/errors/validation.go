package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// MaxDepth is the largest traversal depth the validation layer accepts.
// Deeper walks explode the output without adding information.
const MaxDepth = 100

// entityNameRegex matches Python identifiers, the only names the analyzer
// ever produces for classes and functions.
var entityNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidateEntityName validates an entity name received from a user or an
// API caller. Entity names come back out in shell commands, file names and
// rendered output, so the rules are intentionally conservative:
//   - No empty names
//   - Maximum length of 256 characters
//   - No control characters
//   - Must be a valid Python identifier
func ValidateEntityName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidEntity, "entity name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidEntity, "entity name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidEntity, "entity name contains invalid control characters")
		}
	}

	if !entityNameRegex.MatchString(name) {
		return New(ErrCodeInvalidEntity, "invalid entity name: %q", name)
	}

	return nil
}

// ValidateDepth validates a traversal depth for diagrams and relation trees.
func ValidateDepth(depth int) error {
	if depth < 0 {
		return New(ErrCodeInvalidDepth, "depth cannot be negative")
	}
	if depth > MaxDepth {
		return New(ErrCodeInvalidDepth, "depth too large (max %d)", MaxDepth)
	}
	return nil
}

// ValidatePath validates a repository-relative file path for safety.
// It prevents path traversal attacks and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	// Check for null bytes and control characters
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	// Must not be absolute path
	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "path must be relative (cannot start with /)")
	}

	// Check for path traversal
	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	// No backslashes (potential Windows path injection)
	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}
