// File: flagged.go
// Title: Flag-Delimited Segmentation
// Description: Splits text on a flag rune and keeps only the segments that
//              sit between pairs of flags, and the inverse join that wraps
//              alternate elements in the flag.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-11
// Modified: 2025-02-11
//
// Change History:
// - 2025-02-11 v0.1.0: Initial implementation

package stringx

import (
	"strings"
)

// DefaultFlag is the conventional flag rune for marked-up text.
const DefaultFlag = '§'

// SplitFlagged trims surrounding whitespace from text, splits it on every
// occurrence of flag and returns the segments at odd indices (1, 3, 5, ...),
// i.e. the content between the first and second flag, the third and fourth,
// and so on.
//
// Text with N flags yields N/2 segments. Content after an unpaired final flag
// is dropped, as is everything outside the pairs. The result is never nil.
func SplitFlagged(text string, flag rune) []string {
	parts := strings.Split(strings.TrimSpace(text), string(flag))

	// parts[i] is only enclosed when a closing flag follows it.
	between := make([]string, 0, len(parts)/2)
	for i := 1; i < len(parts)-1; i += 2 {
		between = append(between, parts[i])
	}
	return between
}

// JoinFlagged concatenates parts, wrapping every element at an odd index in
// flag on both sides. parts is not modified.
//
//	JoinFlagged([]string{"outer1", "inner1", "outer2"}, '§') == "outer1§inner1§outer2"
func JoinFlagged(parts []string, flag rune) string {
	f := string(flag)

	var b strings.Builder
	for i, p := range parts {
		if i%2 == 1 {
			b.WriteString(f)
			b.WriteString(p)
			b.WriteString(f)
			continue
		}
		b.WriteString(p)
	}
	return b.String()
}

// JoinFlaggedInPlace behaves like JoinFlagged but also rewrites the odd
// elements of parts to their wrapped form.
func JoinFlaggedInPlace(parts []string, flag rune) string {
	f := string(flag)
	for i := 1; i < len(parts); i += 2 {
		parts[i] = f + parts[i] + f
	}
	return strings.Join(parts, "")
}

// CountFlags returns how many times flag occurs in the trimmed text and
// whether every flag has a partner.
func CountFlags(text string, flag rune) (count int, paired bool) {
	count = strings.Count(strings.TrimSpace(text), string(flag))
	return count, count%2 == 0
}
