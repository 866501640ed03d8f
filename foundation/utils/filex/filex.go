// File: filex.go
// Title: Core File Utilities
// Description: Whole-file read helpers that classify failures into typed
//              errors (not found, permission, decode, read) instead of
//              aborting.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-02-12
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2025-02-12 v0.2.0: Typed read errors, PrintTo; copy/move/walk removed

package filex

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"

	mdwerror "github.com/msto63/libutils/foundation/core/error"
	mdwerrors "github.com/msto63/libutils/foundation/core/errors"
)

// Exists returns true if the file or directory exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ReadFile reads the entire file. Failures are returned as typed errors; see
// IsNotFound and IsPermission.
func ReadFile(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, classify(path, err)
	}
	return content, nil
}

// ReadString reads the entire file and returns it as text. Content that is
// not valid UTF-8 is rejected with a decode error.
func ReadString(path string) (string, error) {
	content, err := ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(content) {
		return "", mdwerrors.FilexDecodeError(path, invalidOffset(content))
	}
	return string(content), nil
}

// PrintTo reads the file and writes its contents followed by a newline to w.
func PrintTo(w io.Writer, path string) error {
	content, err := ReadString(path)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, content+"\n"); err != nil {
		return mdwerrors.FilexWriteFailed(path, err)
	}
	return nil
}

// IsNotFound reports whether err was caused by a missing file.
func IsNotFound(err error) bool {
	return mdwerror.HasCode(err, mdwerrors.CodeFilexNotFound)
}

// IsPermission reports whether err was caused by missing permissions.
func IsPermission(err error) bool {
	return mdwerror.HasCode(err, mdwerrors.CodeFilexPermissionDenied)
}

// IsDecode reports whether err was caused by content that is not UTF-8.
func IsDecode(err error) bool {
	return mdwerror.HasCode(err, mdwerrors.CodeFilexDecodeError)
}

func classify(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return mdwerrors.FilexNotFound(path, err)
	case errors.Is(err, fs.ErrPermission):
		return mdwerrors.FilexPermissionDenied(path, "read", err)
	default:
		return mdwerrors.FilexReadFailed(path, err)
	}
}

// invalidOffset returns the byte offset of the first invalid UTF-8 sequence.
func invalidOffset(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(b)
}
