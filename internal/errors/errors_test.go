package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/curricula/internal/validate"
)

func TestCurriculaError_Error(t *testing.T) {
	err := NewContentError(ErrCodeMalformedModule, "cannot decode module").
		WithModule("01-android")

	message := err.Error()
	assert.Contains(t, message, "[ERR_MALFORMED_MODULE]")
	assert.Contains(t, message, "module:01-android")
	assert.Contains(t, message, "cannot decode module")
}

func TestCurriculaError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := NewIOError(ErrCodeContentDir, "cannot read", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "underlying")
}

func TestCurriculaError_Is(t *testing.T) {
	a := NewConfigError(ErrCodeConfigInvalid, "bad format")
	b := NewConfigError(ErrCodeConfigInvalid, "different message")
	c := NewContentError(ErrCodeEmptyCorpus, "bad format")

	assert.True(t, errors.Is(a, b))
	assert.False(t, errors.Is(a, c))
}

func TestCurriculaError_WithContext(t *testing.T) {
	err := NewContentError(ErrCodeMalformedModule, "msg").
		WithContext("line", 12)

	require.NotNil(t, err.Context)
	assert.Equal(t, 12, err.Context["line"])
}

func TestLoadError(t *testing.T) {
	report := &validate.Report{
		Errors: []validate.Finding{
			{Check: validate.CheckDuplicatePhaseID, Severity: validate.SeverityError, Message: "dup"},
		},
	}
	err := NewLoadError(report)

	assert.Contains(t, err.Error(), "1 errors")

	carried, ok := IsLoadError(err)
	require.True(t, ok)
	assert.Same(t, report, carried)

	wrapped := fmt.Errorf("startup: %w", err)
	carried, ok = IsLoadError(wrapped)
	require.True(t, ok)
	assert.Same(t, report, carried)
}

func TestIsLoadError_OtherError(t *testing.T) {
	_, ok := IsLoadError(fmt.Errorf("plain error"))

	assert.False(t, ok)
}

func TestLoadError_NilReport(t *testing.T) {
	err := &LoadError{}

	assert.Contains(t, err.Error(), "failed validation")
}
