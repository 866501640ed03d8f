// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so callers can decide
//              between retrying, reporting and aborting.
// Author: msto63
// Version: v0.1.1
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2025-03-02 v0.1.1: Severity mapping for I/O and prompt codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error, typically invalid user input
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects one operation
	SeverityMedium

	// SeverityHigh indicates an error the caller most likely cannot recover from
	SeverityHigh

	// SeverityCritical indicates the program cannot continue
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should be reported loudly
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines the default severity for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodePermissionDenied, CodeIOError, CodeConfigError, CodeInvalidConfig:
		return SeverityHigh
	case CodeInvalidInput, CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange, CodeCanceled:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
