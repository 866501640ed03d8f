// Package errors provides the standard error constructors for the libutils
// foundation modules.
//
// Package: errors
// Title: Standard Error Handling API for libutils
// Description: Module identifiers, error codes and builder helpers on top of
//              core/error, so every module reports failures with the same
//              shape: module and operation in the details, a module-specific
//              code and a severity.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for cross-module error standardization
// - 2025-03-02 v0.2.0: filex, inputx, config and tui constructors
//
// Usage:
//
//	err := errors.NewErrorBuilder(errors.ModuleFilex).
//		Operation("read").
//		Cause(ioErr).
//		Code(errors.CodeFilexReadFailed).
//		Build()
//
//	if errors.IsModuleOperation(err, errors.ModuleFilex, "read") {
//		// ...
//	}
package errors
