// File: utils_test.go
// Title: Shared Error Handling Utilities Tests
// Description: Tests for the error builder and the module-scoped
//              constructors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02

package errors

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/libutils/foundation/core/error"
)

func TestErrorBuilder(t *testing.T) {
	t.Run("basic error creation", func(t *testing.T) {
		err := NewErrorBuilder("testmodule").
			Operation("test_op").
			Message("test error").
			Detail("key", "value").
			Severity(mdwerror.SeverityHigh).
			Build()

		require.NotNil(t, err)
		details := err.Details()
		assert.Equal(t, "testmodule", details["module"])
		assert.Equal(t, "test_op", details["operation"])
		assert.Equal(t, "value", details["key"])
		assert.Equal(t, mdwerror.SeverityHigh, err.Severity())
		assert.Equal(t, "test_op", err.Operation())
	})

	t.Run("error with cause", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := NewErrorBuilder("testmodule").
			Operation("test_op").
			Cause(cause).
			Build()

		assert.True(t, errors.Is(err, cause))
		assert.Equal(t, "testmodule.test_op failed: underlying error", err.Error())
	})

	t.Run("default code per module", func(t *testing.T) {
		tests := []struct {
			module    string
			operation string
			want      string
		}{
			{ModuleFilex, "read", CodeFilexReadFailed},
			{ModuleFilex, "print", CodeFilexWriteFailed},
			{ModuleInputx, "read_line", CodeInputxReadFailed},
			{ModuleSlicex, "anything", CodeSlicexOperationFailed},
			{ModuleConfig, "load", CodeConfigLoadFailed},
			{ModuleTUI, "select", CodeTUIRunFailed},
			{ModuleStringx, "split", CodeOperationFailed},
		}
		for _, tt := range tests {
			err := NewErrorBuilder(tt.module).Operation(tt.operation).Build()
			assert.Equal(t, mdwerror.Code(tt.want), err.Code(), "%s.%s", tt.module, tt.operation)
		}
	})

	t.Run("message without operation", func(t *testing.T) {
		err := NewErrorBuilder("m").Build()
		assert.Equal(t, "m operation failed", err.Error())
	})
}

func TestStandardConstructors(t *testing.T) {
	err := InvalidInput(ModuleStringx, "split", "", "flag rune")
	assert.Equal(t, mdwerror.Code(CodeInvalidInput), err.Code())
	assert.Equal(t, mdwerror.SeverityLow, err.Severity())

	err = OutOfRange(ModuleInputx, "int_in_range", 9, 1, 5)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Equal(t, 9, err.Details()["value"])

	cause := errors.New("disk gone")
	err = OperationFailed(ModuleFilex, "read", cause)
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, mdwerror.SeverityHigh, err.Severity())
}

func TestFilexConstructors(t *testing.T) {
	err := FilexNotFound("/nope", fs.ErrNotExist)
	assert.Equal(t, mdwerror.Code(CodeFilexNotFound), err.Code())
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Equal(t, "/nope", err.Details()["path"])
	assert.True(t, IsModuleOperation(err, ModuleFilex, "read"))

	err = FilexPermissionDenied("/root/x", "read", fs.ErrPermission)
	assert.Equal(t, mdwerror.SeverityHigh, err.Severity())
	assert.True(t, errors.Is(err, fs.ErrPermission))

	err = FilexDecodeError("/bin/x", 3)
	assert.Equal(t, 3, err.Details()["offset"])
}

func TestInputxConstructors(t *testing.T) {
	err := InputxAttemptsExceeded("Age: ", 3)
	assert.Equal(t, mdwerror.Code(CodeInputxAttemptsExceeded), err.Code())
	assert.Equal(t, 3, err.Details()["attempts"])
	assert.Equal(t, ModuleInputx, ExtractModule(err))
}

func TestExtractHelpersOnForeignErrors(t *testing.T) {
	plain := errors.New("plain")
	assert.Nil(t, ExtractDetails(plain))
	assert.Equal(t, "", ExtractModule(plain))
	assert.False(t, IsModuleOperation(plain, ModuleFilex, "read"))
}
