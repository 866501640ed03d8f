// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity and
//              compatibility with the standard errors package.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2025-03-02 v0.2.0: Adapted to the reduced Error type

package error

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("test error message")
	require.NotNil(t, err)

	assert.Equal(t, "test error message", err.Error())
	assert.Equal(t, CodeUnknown, err.Code())
	assert.Equal(t, SeverityMedium, err.Severity())
	assert.False(t, err.Timestamp().IsZero())
	assert.Empty(t, err.Details())
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		wantNil bool
		wantMsg string
	}{
		{name: "wrap nil error", err: nil, message: "context", wantNil: true},
		{name: "wrap standard error", err: io.EOF, message: "read failed", wantMsg: "read failed: EOF"},
		{name: "wrap mdw error", err: New("inner"), message: "outer", wantMsg: "outer: inner"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, tt.message)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantMsg, got.Error())
			assert.Equal(t, tt.message, got.Message())
		})
	}
}

func TestWrapInheritsMetadata(t *testing.T) {
	inner := New("inner").
		WithCode(CodeNotFound).
		WithOperation("read").
		WithDetail("path", "/tmp/x")

	outer := Wrap(inner, "outer")

	assert.Equal(t, CodeNotFound, outer.Code())
	assert.Equal(t, inner.Severity(), outer.Severity())
	assert.Equal(t, "read", outer.Operation())
	assert.Equal(t, "/tmp/x", outer.Details()["path"])
}

func TestWrapChainTruncation(t *testing.T) {
	var err error = New("root")
	for i := 0; i < MaxErrorChainDepth+2; i++ {
		err = Wrap(err, "layer")
	}

	mdwErr, ok := err.(*Error)
	require.True(t, ok)
	assert.LessOrEqual(t, chainDepth(mdwErr), MaxErrorChainDepth+1)
	assert.Contains(t, mdwErr.Error(), "chain truncated")
}

func TestUnwrapAndIs(t *testing.T) {
	err := Wrap(io.EOF, "prompt")
	assert.True(t, errors.Is(err, io.EOF))

	coded := New("missing").WithCode(CodeNotFound)
	wrapped := Wrapf(coded, "loading %s", "config.toml")

	assert.True(t, errors.Is(wrapped, New("").WithCode(CodeNotFound)))
	assert.False(t, errors.Is(wrapped, New("").WithCode(CodeTimeout)))
	assert.False(t, errors.Is(wrapped, New("no code")))

	var target *Error
	require.True(t, errors.As(wrapped, &target))
	assert.Equal(t, CodeNotFound, target.Code())
}

func TestWithCodeDerivesSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeInternal, SeverityCritical},
		{CodePermissionDenied, SeverityHigh},
		{CodeInvalidInput, SeverityLow},
		{CodeNotFound, SeverityMedium},
		{Code("FILEX_NOT_FOUND"), SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, New("x").WithCode(tt.code).Severity())
		})
	}
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "low", SeverityLow.String())
	assert.Equal(t, "critical", SeverityCritical.String())
	assert.Equal(t, "unknown", Severity(42).String())
	assert.True(t, SeverityHigh.ShouldAlert())
	assert.False(t, SeverityMedium.ShouldAlert())
}

func TestHelpers(t *testing.T) {
	err := Wrap(New("boom").WithCode(CodeIOError), "outer")

	assert.True(t, HasCode(err, CodeIOError))
	assert.False(t, HasCode(io.EOF, CodeIOError))
	assert.Equal(t, CodeIOError, GetCode(err))
	assert.Equal(t, CodeUnknown, GetCode(io.EOF))
	assert.Equal(t, SeverityHigh, GetSeverity(err))
	assert.Equal(t, SeverityMedium, GetSeverity(io.EOF))
}

func TestStringIsDeterministic(t *testing.T) {
	err := New("bad").WithCode(CodeInvalidInput).WithDetails(map[string]interface{}{
		"b": 2,
		"a": 1,
	})

	s := err.String()
	assert.True(t, strings.HasPrefix(s, "[INVALID_INPUT/low] bad"))
	assert.Less(t, strings.Index(s, "a=1"), strings.Index(s, "b=2"))
}

func TestDetailsReturnsCopy(t *testing.T) {
	err := New("x").WithDetail("k", "v")
	d := err.Details()
	d["k"] = "changed"
	assert.Equal(t, "v", err.Details()["k"])
}
