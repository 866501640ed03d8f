// File: level_test.go
// Title: Log Level and Format Tests
// Description: Tests for level and format parsing.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02

package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"DBG", LevelDebug, false},
		{" info ", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			assert.Equal(t, tt.want, got)
			if tt.wantErr {
				assert.EqualError(t, err, "invalid level: "+tt.input)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "debug", LevelDebug.String())
	assert.Equal(t, "error", LevelError.String())
	assert.Equal(t, "unknown", Level(99).String())
	assert.True(t, LevelError.ShouldLog(LevelWarn))
	assert.False(t, LevelDebug.ShouldLog(LevelInfo))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("JSON")
	assert.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = ParseFormat("text")
	assert.NoError(t, err)
	assert.Equal(t, FormatConsole, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
	assert.Equal(t, "json", FormatJSON.String())
}
