// File: format.go
// Title: Log Output Formats
// Description: Output formats for the logger and the zap encoders that
//              implement them.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with JSON, text, console and logfmt formatters
// - 2025-03-02 v0.2.0: Formatters replaced by zap encoders (json, console)

package log

import (
	"strings"

	"go.uber.org/zap/zapcore"
)

// Format specifies the output format for log entries
type Format int

const (
	// FormatConsole is a human-readable, tab-separated line format
	FormatConsole Format = iota

	// FormatJSON emits one JSON object per entry
	FormatJSON
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatConsole:
		return "console"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a Format
func ParseFormat(format string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "console", "text", "":
		return FormatConsole, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatConsole, &ParseError{
			Input: format,
			Type:  "format",
		}
	}
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "message",
		StacktraceKey:  "",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
	return cfg
}

func (f Format) encoder() zapcore.Encoder {
	if f == FormatJSON {
		return zapcore.NewJSONEncoder(encoderConfig())
	}
	return zapcore.NewConsoleEncoder(encoderConfig())
}
