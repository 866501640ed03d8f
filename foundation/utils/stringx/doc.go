// Package stringx provides the string helpers of libutils.
//
// Package: stringx
// Title: String Operations for libutils
// Description: Flag-delimited segmentation and joining, space-separated
//              concatenation and rune-correct character access.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-02-11
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation
// - 2025-02-11 v0.3.0: Flagged text segmentation
//
// # Flagged text
//
// A flag is a single rune that marks the start and end of "inside" content
// within a larger string. There is no escaping: every occurrence of the flag
// is a boundary.
//
//	stringx.SplitFlagged("The §quick§ brown §fox§", '§')   // ["quick", "fox"]
//	stringx.JoinFlagged([]string{"The ", "quick", " brown"}, '§') // "The §quick§ brown"
//
// Segments are counted from zero after splitting; those at odd indices are
// the inside content. A trailing unpaired flag contributes nothing.
//
// # Other helpers
//
//	stringx.ConcatSpaced([]string{"a", "b "}) // "a b "
//	stringx.LastChar("naïve")                 // 'e', true
package stringx
