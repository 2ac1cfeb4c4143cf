// File: stringx.go
// Title: String Utility Functions
// Description: Provides the small set of string helpers used across the
//              IxCompiler foundation: blank/empty checks for validation
//              and Unicode-safe truncation for diagnostics output.
// Author: danielbradley
// Version: v0.1.1
// Created: 2026-08-24
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-24 v0.1.0: Initial implementation with core string utilities
// - 2026-08-25 v0.1.1: Add ValidateNotBlank for standard validation errors

package stringx

import (
	"unicode"
	"unicode/utf8"

	ixerror "github.com/danielbradley/IxCompiler/core/error"
)

// IsEmpty returns true if the string is empty (length 0).
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace.
// This is more comprehensive than IsEmpty and commonly needed in validation.
func IsBlank(s string) bool {
	if len(s) == 0 {
		return true
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank returns true if the string contains non-whitespace characters.
// Convenience function that's the inverse of IsBlank.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// Truncate truncates a string to the specified length, adding an ellipsis
// if truncated. The function is Unicode-aware and will not break multi-byte
// characters. If the string is shorter than maxLen, it returns the original
// string unchanged.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}

	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		// Ellipsis alone would not fit; return the bare truncation.
		return string([]rune(s)[:maxLen])
	}

	contentLen := maxLen - ellipsisLen
	return string([]rune(s)[:contentLen]) + ellipsis
}

// ValidateNotBlank validates that a string is not blank, following standard
// error patterns.
func ValidateNotBlank(s string) error {
	if IsBlank(s) {
		return ixerror.New("expected a non-blank string").
			WithCode(ixerror.CodeValidationFailed).
			WithOperation("stringx.ValidateNotBlank")
	}
	return nil
}
