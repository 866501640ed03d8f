// File: stringx.go
// Title: Core String Utility Functions
// Description: Small string helpers used by the prompt and CLI layers:
//              space-separated concatenation, last-rune access and blank
//              checks.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-02-11
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2025-02-11 v0.2.0: ConcatSpaced and LastChar; unused helpers removed

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ConcatSpaced appends each part to the result and then adds a single space
// unless the result already ends with one. Parts that already end in a space
// are therefore not doubled.
//
//	ConcatSpaced([]string{"a", "b "}) == "a b "
func ConcatSpaced(parts []string) string {
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(p)
		if !strings.HasSuffix(b.String(), " ") {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// LastChar returns the final rune of s. ok is false for an empty string.
// Invalid trailing UTF-8 is reported as utf8.RuneError.
func LastChar(s string) (r rune, ok bool) {
	if s == "" {
		return 0, false
	}
	r, _ = utf8.DecodeLastRuneInString(s)
	return r, true
}

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// FirstRune returns the first rune of s. ok is false for an empty string.
func FirstRune(s string) (r rune, ok bool) {
	if s == "" {
		return 0, false
	}
	r, _ = utf8.DecodeRuneInString(s)
	return r, true
}
