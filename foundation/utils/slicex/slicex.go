// File: slicex.go
// Title: Core Slice Utilities
// Description: Generic slice helpers and longest-string lookups used by the
//              CLI and the selection menu.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-02-12
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive slice utilities
// - 2025-02-12 v0.2.0: Longest-string helpers; unused transformations removed

package slicex

import (
	"github.com/mattn/go-runewidth"
)

// Map transforms each element in the slice using the provided function
func Map[T, R any](slice []T, mapper func(T) R) []R {
	if slice == nil || mapper == nil {
		return nil
	}

	result := make([]R, len(slice))
	for i, item := range slice {
		result[i] = mapper(item)
	}
	return result
}

// Filter returns a new slice containing only elements that match the predicate
func Filter[T any](slice []T, predicate func(T) bool) []T {
	if slice == nil || predicate == nil {
		return nil
	}

	result := make([]T, 0, len(slice))
	for _, item := range slice {
		if predicate(item) {
			result = append(result, item)
		}
	}
	return result
}

// maxIndexBy returns the index of the first element with the largest
// measure, or -1 for an empty slice.
func maxIndexBy(items []string, measure func(string) int) (idx, size int) {
	idx = -1
	for i, s := range items {
		if n := measure(s); idx < 0 || n > size {
			idx, size = i, n
		}
	}
	return idx, size
}

func byteLen(s string) int { return len(s) }

// LongestLen returns the length in bytes of the longest string, or 0 for an
// empty slice.
func LongestLen(items []string) int {
	_, n := maxIndexBy(items, byteLen)
	return n
}

// Longest returns the longest string by byte length. When several strings
// share the maximum length the first one wins. ok is false for an empty
// slice.
func Longest(items []string) (longest string, ok bool) {
	i, _ := maxIndexBy(items, byteLen)
	if i < 0 {
		return "", false
	}
	return items[i], true
}

// LongestWidth returns the widest string's width in terminal cells. East
// Asian wide characters count as two cells, combining marks as zero.
func LongestWidth(items []string) int {
	_, w := maxIndexBy(items, runewidth.StringWidth)
	return w
}
