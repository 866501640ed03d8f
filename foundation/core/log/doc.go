// Package log provides structured logging for libutils.
//
// Package: log
// Title: Structured Logging for libutils
// Description: A Logger with persistent context fields, named children and
//              severity-aware error logging. Encoding and level filtering are
//              done by go.uber.org/zap; callers only see Fields and Level.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2025-03-02 v0.2.0: zap backend
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{Level: log.LevelInfo, Format: log.FormatJSON})
//	logger = logger.WithName("cli").WithCorrelationID(runID)
//	logger.Info("split done", log.Int("segments", n))
//	logger.LogError(err) // level chosen from the error's severity
package log
