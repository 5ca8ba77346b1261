package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New(ErrConfig, "Config file not found", "Run 'ham init' to create one")

	assert.Equal(t, ErrConfig, err.Code)
	assert.Equal(t, "Config file not found", err.Message)
	assert.Nil(t, err.Cause)
}

func TestError_Format(t *testing.T) {
	err := WrapWithCode(fmt.Errorf("dial tcp: connection refused"),
		ErrProbe, "Probe failed", "Check your network connection")

	out := err.Error()
	assert.True(t, strings.HasPrefix(out, "✗ Probe failed"))
	assert.Contains(t, out, "connection refused")
	assert.Contains(t, out, "Check your network connection")
}

func TestError_FormatWithoutCauseOrSuggestion(t *testing.T) {
	err := New(ErrTerm, "Cannot acquire terminal", "")

	out := err.Error()
	assert.Equal(t, "✗ Cannot acquire terminal\n", out)
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := Wrap(cause, "wrapped")

	assert.Equal(t, cause, errors.Unwrap(err))
	assert.True(t, errors.Is(err, cause))
}

func TestIsCode(t *testing.T) {
	err := New(ErrProbe, "probe timed out", "")

	assert.True(t, IsCode(err, ErrProbe))
	assert.False(t, IsCode(err, ErrConfig))
	assert.False(t, IsCode(nil, ErrProbe))
	assert.False(t, IsCode(fmt.Errorf("plain"), ErrProbe))

	// Wrapped structured errors still match by code.
	wrapped := fmt.Errorf("outer: %w", err)
	assert.True(t, IsCode(wrapped, ErrProbe))
}

func TestNewNotImplemented(t *testing.T) {
	err := NewNotImplemented("qr export")

	assert.Equal(t, ErrExec, err.Code)
	assert.Contains(t, err.Message, "qr export")
}
