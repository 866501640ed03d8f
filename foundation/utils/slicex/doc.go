// Package slicex provides slice helpers for libutils.
//
// Package: slicex
// Title: Slice Utilities for libutils
// Description: Generic Map and Filter, longest-string lookups and uniform
//              random choice. Functions never index past the end of an
//              empty slice; they report absence through an ok result.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-02-12
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation
// - 2025-02-12 v0.2.0: Longest and RandomChoice
//
// Tie-breaking: Longest returns the first of several equally long strings.
package slicex
