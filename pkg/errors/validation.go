package errors

import (
	"strings"
	"unicode"
)

// MaxTargetLength bounds search target labels. Trees never exceed 50 nodes,
// so labels are at most two letters; the bound only rejects garbage early.
const MaxTargetLength = 8

// ValidateRange checks that value lies in [lo, hi]. The message follows the
// wording used for tree parameters, e.g. "Levels must be between 2 and 10".
func ValidateRange(name string, value, lo, hi int) error {
	if value < lo || value > hi {
		return New(ErrCodeInvalidParams, "%s must be between %d and %d", name, lo, hi)
	}
	return nil
}

// NormalizeTarget upper-cases and trims a search target.
func NormalizeTarget(target string) string {
	return strings.ToUpper(strings.TrimSpace(target))
}

// ValidateTarget validates a normalized search target label.
//
// Validation rules:
//   - Target cannot be empty
//   - Only letters A-Z
//   - Maximum length of MaxTargetLength characters
func ValidateTarget(target string) error {
	if target == "" {
		return New(ErrCodeInvalidTarget, "Please enter a value to search")
	}
	if len(target) > MaxTargetLength {
		return New(ErrCodeInvalidTarget, "target too long (max %d characters)", MaxTargetLength)
	}
	for _, r := range target {
		if r < 'A' || r > 'Z' {
			return New(ErrCodeInvalidTarget, "target %q must contain only letters A-Z", target)
		}
	}
	return nil
}

// ValidateText validates cipher input text.
func ValidateText(text string) error {
	if text == "" {
		return New(ErrCodeInvalidInput, "text cannot be empty")
	}
	for _, r := range text {
		if r == '\x00' || (unicode.IsControl(r) && r != '\n' && r != '\t' && r != '\r') {
			return New(ErrCodeInvalidInput, "text contains invalid control characters")
		}
	}
	return nil
}

// ValidateKeyword checks that key contains at least one letter and returns
// the key upper-cased with everything but A-Z removed.
func ValidateKeyword(cipher, key string) (string, error) {
	if key == "" {
		return "", New(ErrCodeInvalidKey, "%s requires a keyword", cipher)
	}
	var b strings.Builder
	for _, r := range strings.ToUpper(key) {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "", New(ErrCodeInvalidKey, "Key must contain at least one letter")
	}
	return b.String(), nil
}
