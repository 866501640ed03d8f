// Package error provides the structured error type shared by all libutils
// packages.
//
// Package: error
// Title: libutils Error Handling
// Description: An Error carries a message, an optional cause, a Code, a
//              Severity and a details map. It implements Unwrap and Is so it
//              works with the standard errors package. Library code never
//              terminates the process on failure; it returns one of these
//              and lets the caller decide.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2025-03-02 v0.2.0: Trimmed to code, severity, operation and details
//
// Usage:
//
//	import mdwerror "github.com/msto63/libutils/foundation/core/error"
//
//	err := mdwerror.New("file not found").
//		WithCode(mdwerror.CodeNotFound).
//		WithDetail("path", path)
//
//	if mdwerror.HasCode(err, mdwerror.CodeNotFound) {
//		// ...
//	}
package error
