package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrConfigLoad, "could not load config")
	assert.Equal(t, "[CONFIG_LOAD] could not load config", err.Error())
	assert.Equal(t, ErrConfigLoad, err.Code)
	assert.NotNil(t, err.Details)
}

func TestNewf(t *testing.T) {
	err := Newf(ErrSubprocess, "%s exited with status %d", "pactree", 1)
	assert.Equal(t, "[SUBPROCESS] pactree exited with status 1", err.Error())
}

func TestWrap(t *testing.T) {
	t.Run("wraps underlying error", func(t *testing.T) {
		inner := errors.New("permission denied")
		err := Wrap(inner, ErrFileCopy, "copying file")

		require.NotNil(t, err)
		assert.Equal(t, "[FILE_COPY] copying file: permission denied", err.Error())
		assert.Equal(t, inner, errors.Unwrap(err))
	})

	t.Run("nil error returns nil", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, ErrFileCopy, "copying file"))
		assert.Nil(t, Wrapf(nil, ErrFileCopy, "copying %s", "file"))
	})
}

func TestErrorIs(t *testing.T) {
	err := Newf(ErrParse, "unexpected output: %q", "garbage")
	wrapped := fmt.Errorf("resolving manifest: %w", err)

	assert.True(t, errors.Is(wrapped, New(ErrParse, "")))
	assert.False(t, errors.Is(wrapped, New(ErrSubprocess, "")))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrFileCopy, "copy failed").
		WithDetail("source", "/usr/bin/gtk3-demo").
		WithDetail("destination", "/opt/app/bin/gtk3-demo")

	details := GetErrorDetails(err)
	require.NotNil(t, details)
	assert.Equal(t, "/usr/bin/gtk3-demo", details["source"])
	assert.Equal(t, "/opt/app/bin/gtk3-demo", details["destination"])
}

func TestIsErrorCode(t *testing.T) {
	err := New(ErrToolMissing, "pacman not found")

	assert.True(t, IsErrorCode(err, ErrToolMissing))
	assert.False(t, IsErrorCode(err, ErrSubprocess))
	assert.False(t, IsErrorCode(errors.New("plain"), ErrToolMissing))

	wrapped := fmt.Errorf("detecting manager: %w", err)
	assert.True(t, IsErrorCode(wrapped, ErrToolMissing))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrParse, GetErrorCode(New(ErrParse, "bad line")))
	assert.Equal(t, ErrUnknown, GetErrorCode(errors.New("plain")))
}
