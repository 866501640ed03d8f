// Package filex provides whole-file read helpers for libutils.
//
// Package: filex
// Title: File Utilities for libutils
// Description: Reads complete files into memory and reports failures as
//              typed errors from core/errors: FILEX_NOT_FOUND,
//              FILEX_PERMISSION_DENIED, FILEX_DECODE_ERROR and
//              FILEX_READ_FAILED. Reads are synchronous and not size-limited.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-02-12
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation
// - 2025-02-12 v0.2.0: Typed errors
//
// Usage:
//
//	text, err := filex.ReadString("notes.txt")
//	switch {
//	case filex.IsNotFound(err):
//		// offer to create it
//	case err != nil:
//		return err
//	}
package filex
