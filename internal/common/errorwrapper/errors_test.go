package errorwrapper

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapError(t *testing.T) {
	err := WrapError(io.ErrUnexpectedEOF, "failed to read document")
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Equal(t, "failed to read document: unexpected EOF", err.Error())

	assert.EqualError(t, WrapError(nil, "nothing"), "nothing: <nil>")
}

func TestParseError(t *testing.T) {
	err := NewParseError("export.html", "document exceeds 1 MB", ErrTooLarge)

	assert.ErrorIs(t, err, ErrTooLarge)
	assert.Contains(t, err.Error(), "export.html")

	var parseErr *ParseError
	assert.True(t, errors.As(WrapError(err, "load failed"), &parseErr))
	assert.Equal(t, "document exceeds 1 MB", parseErr.Reason)

	assert.Equal(t, "parse error: empty", NewParseError("", "empty", nil).Error())
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("userid")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrNoData)
	assert.Equal(t, "parameter 'userid' not found", err.Error())
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("log_level", "loud", "unknown level")
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	assert.Contains(t, err.Error(), "log_level")
}
