// File: utils.go
// Title: Shared Error Handling Utilities
// Description: Error builder and module-scoped constructors used by the
//              libutils foundation packages for consistent error patterns.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of shared error utilities
// - 2025-07-26 v0.1.1: Enhanced OutOfRange function with "validation failed:" prefix
// - 2025-08-02 v0.2.0: Constructors for filex, inputx, config and tui

package errors

import (
	"fmt"

	mdwerror "github.com/msto63/libutils/foundation/core/error"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  mdwerror.Severity
	code      string
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: mdwerror.SeverityMedium,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity sets the error severity
func (eb *ErrorBuilder) Severity(severity mdwerror.Severity) *ErrorBuilder {
	eb.severity = severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code string) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *mdwerror.Error {
	if eb.code == "" {
		eb.code = getModuleErrorCode(eb.module, eb.operation)
	}

	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module
	if eb.operation != "" {
		eb.details["operation"] = eb.operation
	}

	var err *mdwerror.Error
	if eb.cause != nil {
		err = mdwerror.Wrap(eb.cause, eb.message)
	} else {
		err = mdwerror.New(eb.message)
	}

	// WithCode resets severity, so the explicit severity goes last.
	return err.
		WithCode(mdwerror.Code(eb.code)).
		WithOperation(eb.operation).
		WithDetails(eb.details).
		WithSeverity(eb.severity)
}

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("invalid input for %s.%s", module, operation)).
		Code(CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Severity(mdwerror.SeverityLow).
		Build()
}

// OperationFailed creates a standardized operation failure error
func OperationFailed(module, operation string, cause error) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("%s.%s operation failed", module, operation)).
		Cause(cause).
		Severity(mdwerror.SeverityHigh).
		Build()
}

// OutOfRange creates a standardized out of range error
func OutOfRange(module, operation string, value, min, max interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("validation failed: value out of range in %s.%s", module, operation)).
		Code(CodeOutOfRange).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Severity(mdwerror.SeverityLow).
		Build()
}

// ExtractDetails extracts all details from a mDW error
func ExtractDetails(err error) map[string]interface{} {
	if mdwErr, ok := err.(*mdwerror.Error); ok {
		return mdwErr.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	if module, ok := ExtractDetails(err)["module"].(string); ok {
		return module
	}
	return ""
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	mdwErr, ok := err.(*mdwerror.Error)
	return ok && ExtractModule(err) == module && mdwErr.Operation() == operation
}

// FileX convenience functions

func FilexNotFound(path string, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleFilex).
		Operation("read").
		Messagef("file not found: %s", path).
		Cause(cause).
		Code(CodeFilexNotFound).
		Detail("path", path).
		Severity(mdwerror.SeverityMedium).
		Build()
}

func FilexPermissionDenied(path, operation string, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleFilex).
		Operation(operation).
		Messagef("permission denied: %s", path).
		Cause(cause).
		Code(CodeFilexPermissionDenied).
		Detail("path", path).
		Severity(mdwerror.SeverityHigh).
		Build()
}

func FilexDecodeError(path string, offset int) *mdwerror.Error {
	return NewErrorBuilder(ModuleFilex).
		Operation("read").
		Messagef("file is not valid UTF-8: %s", path).
		Code(CodeFilexDecodeError).
		Detail("path", path).
		Detail("offset", offset).
		Severity(mdwerror.SeverityMedium).
		Build()
}

func FilexReadFailed(path string, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleFilex).
		Operation("read").
		Messagef("cannot read file: %s", path).
		Cause(cause).
		Code(CodeFilexReadFailed).
		Detail("path", path).
		Severity(mdwerror.SeverityHigh).
		Build()
}

func FilexWriteFailed(path string, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleFilex).
		Operation("print").
		Messagef("cannot write contents of %s", path).
		Cause(cause).
		Code(CodeFilexWriteFailed).
		Detail("path", path).
		Severity(mdwerror.SeverityHigh).
		Build()
}

// InputX convenience functions

func InputxReadFailed(prompt string, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleInputx).
		Operation("read_line").
		Message("cannot read input").
		Cause(cause).
		Code(CodeInputxReadFailed).
		Detail("prompt", prompt).
		Severity(mdwerror.SeverityHigh).
		Build()
}

func InputxAttemptsExceeded(prompt string, attempts int) *mdwerror.Error {
	return NewErrorBuilder(ModuleInputx).
		Operation("prompt").
		Messagef("no valid answer after %d attempts", attempts).
		Code(CodeInputxAttemptsExceeded).
		Detail("prompt", prompt).
		Detail("attempts", attempts).
		Severity(mdwerror.SeverityLow).
		Build()
}

func InputxCanceled(prompt string, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleInputx).
		Operation("prompt").
		Message("prompt canceled").
		Cause(cause).
		Code(CodeInputxCanceled).
		Detail("prompt", prompt).
		Severity(mdwerror.SeverityLow).
		Build()
}

// Config convenience functions

func ConfigLoadFailed(path string, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation("load").
		Messagef("cannot load configuration %s", path).
		Cause(cause).
		Code(CodeConfigLoadFailed).
		Detail("path", path).
		Severity(mdwerror.SeverityHigh).
		Build()
}

func ConfigInvalid(field string, value interface{}, reason string) *mdwerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation("validate").
		Messagef("invalid configuration value for %s: %s", field, reason).
		Code(CodeConfigInvalid).
		Detail("field", field).
		Detail("value", value).
		Severity(mdwerror.SeverityHigh).
		Build()
}

// TUI convenience functions

func TUIAborted(prompt string) *mdwerror.Error {
	return NewErrorBuilder(ModuleTUI).
		Operation("select").
		Message("selection aborted").
		Code(CodeTUIAborted).
		Detail("prompt", prompt).
		Severity(mdwerror.SeverityLow).
		Build()
}

func TUINoItems(prompt string) *mdwerror.Error {
	return NewErrorBuilder(ModuleTUI).
		Operation("select").
		Message("nothing to select").
		Code(CodeTUINoItems).
		Detail("prompt", prompt).
		Severity(mdwerror.SeverityLow).
		Build()
}

func TUIRunFailed(prompt string, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleTUI).
		Operation("select").
		Message("menu failed").
		Cause(cause).
		Code(CodeTUIRunFailed).
		Detail("prompt", prompt).
		Severity(mdwerror.SeverityHigh).
		Build()
}
