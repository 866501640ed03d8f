// File: stringx_test.go
// Title: Unit Tests for Core String Utilities
// Description: Unit tests for ConcatSpaced, LastChar, FirstRune and IsBlank.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-02-11
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test implementation
// - 2025-02-11 v0.2.0: Tests for the concat and rune helpers

package stringx

import (
	"testing"
	"unicode/utf8"
)

func TestConcatSpaced(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected string
	}{
		{"nil", nil, ""},
		{"empty", []string{}, ""},
		{"single", []string{"a"}, "a "},
		{"words", []string{"a", "b", "c"}, "a b c "},
		{"trailing space kept single", []string{"a", "b "}, "a b "},
		{"leading space not trimmed", []string{" a", "b"}, " a b "},
		{"empty element", []string{"a", "", "b"}, "a b "},
		{"only spaces", []string{" ", " "}, "  "},
		{"unicode", []string{"grüß", "gott"}, "grüß gott "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ConcatSpaced(tt.input)
			if result != tt.expected {
				t.Errorf("ConcatSpaced(%q) = %q; want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestLastChar(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   rune
		wantOK bool
	}{
		{"empty string", "", 0, false},
		{"single character", "a", 'a', true},
		{"ascii", "hello", 'o', true},
		{"accented inside", "héllo", 'o', true},
		{"multi-byte last", "naïve§", '§', true},
		{"emoji last", "ok🌟", '🌟', true},
		{"trailing space", "end ", ' ', true},
		{"invalid utf8", "ab\xff", utf8.RuneError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := LastChar(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("LastChar(%q) = (%q, %v); want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestFirstRune(t *testing.T) {
	if r, ok := FirstRune("ßeta"); r != 'ß' || !ok {
		t.Errorf("FirstRune(%q) = (%q, %v)", "ßeta", r, ok)
	}
	if _, ok := FirstRune(""); ok {
		t.Error("FirstRune(\"\") should not be ok")
	}
}

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"empty string", "", true},
		{"single space", " ", true},
		{"mixed whitespace", " \t\n\r ", true},
		{"string with content", "hello", false},
		{"string with spaces around", " hello ", false},
		{"unicode content", "こんにちは", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsBlank(tt.input)
			if result != tt.expected {
				t.Errorf("IsBlank(%q) = %v; want %v", tt.input, result, tt.expected)
			}
		})
	}
}
