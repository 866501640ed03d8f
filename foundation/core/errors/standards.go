// File: standards.go
// Title: Error Standards for libutils
// Description: Module identifiers and error codes shared by the libutils
//              foundation packages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2025-01-25 v0.1.1: Fixed import and type reference issues
// - 2025-03-02 v0.2.0: Modules and codes for file, prompt and menu helpers

package errors

import (
	"strings"
)

// Module identifiers for error categorization
const (
	ModuleStringx = "stringx"
	ModuleSlicex  = "slicex"
	ModuleFilex   = "filex"
	ModuleInputx  = "inputx"
	ModuleConfig  = "config"
	ModuleTUI     = "tui"
)

// Standardized error codes for all modules
const (
	// Common error codes
	CodeInvalidInput     = "INVALID_INPUT"
	CodeInvalidFormat    = "INVALID_FORMAT"
	CodeOutOfRange       = "OUT_OF_RANGE"
	CodeNotFound         = "NOT_FOUND"
	CodePermissionDenied = "PERMISSION_DENIED"
	CodeOperationFailed  = "OPERATION_FAILED"

	// stringx
	CodeStringxInvalidFlag = "STRINGX_INVALID_FLAG"

	// slicex
	CodeSlicexEmptySlice      = "SLICEX_EMPTY_SLICE"
	CodeSlicexOperationFailed = "SLICEX_OPERATION_FAILED"

	// filex
	CodeFilexNotFound         = "FILEX_NOT_FOUND"
	CodeFilexPermissionDenied = "FILEX_PERMISSION_DENIED"
	CodeFilexDecodeError      = "FILEX_DECODE_ERROR"
	CodeFilexReadFailed       = "FILEX_READ_FAILED"
	CodeFilexWriteFailed      = "FILEX_WRITE_FAILED"

	// inputx
	CodeInputxReadFailed       = "INPUTX_READ_FAILED"
	CodeInputxAttemptsExceeded = "INPUTX_ATTEMPTS_EXCEEDED"
	CodeInputxCanceled         = "INPUTX_CANCELED"

	// config
	CodeConfigLoadFailed = "CONFIG_LOAD_FAILED"
	CodeConfigInvalid    = "CONFIG_INVALID"

	// tui
	CodeTUIAborted   = "TUI_ABORTED"
	CodeTUINoItems   = "TUI_NO_ITEMS"
	CodeTUIRunFailed = "TUI_RUN_FAILED"
)

// getModuleErrorCode returns the default error code for a module operation
func getModuleErrorCode(module, operation string) string {
	switch module {
	case ModuleFilex:
		switch {
		case strings.Contains(operation, "read"):
			return CodeFilexReadFailed
		case strings.Contains(operation, "write"), strings.Contains(operation, "print"):
			return CodeFilexWriteFailed
		}
	case ModuleInputx:
		if strings.Contains(operation, "read") {
			return CodeInputxReadFailed
		}
	case ModuleSlicex:
		return CodeSlicexOperationFailed
	case ModuleConfig:
		return CodeConfigLoadFailed
	case ModuleTUI:
		return CodeTUIRunFailed
	}
	return CodeOperationFailed
}
