package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New(ErrConfig, "Bad config", "Run tell init")

	assert.Equal(t, ErrConfig, err.Code)
	assert.Equal(t, "Bad config", err.Message)
	assert.Equal(t, "Run tell init", err.Suggestion)
	assert.Nil(t, err.Cause)
}

func TestErrorStringLayout(t *testing.T) {
	err := WrapWithCode(stderrors.New("permission denied"), ErrIO,
		"Failed to write config", "Check directory permissions")

	got := err.Error()
	assert.Equal(t, "Failed to write config\n  permission denied\n  Check directory permissions", got)
}

func TestErrorStringMessageOnly(t *testing.T) {
	err := New(ErrUsage, "Unknown flag", "")

	assert.Equal(t, "Unknown flag", err.Error())
}

func TestWrapDefaultsToIO(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(cause, "Failed to save")

	assert.Equal(t, ErrIO, err.Code)
	assert.Same(t, cause, err.Cause)
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("root cause")
	err := Wrap(cause, "wrapper")

	assert.True(t, stderrors.Is(err, cause))
}

func TestIsCode(t *testing.T) {
	err := New(ErrConfig, "bad", "")

	assert.True(t, IsCode(err, ErrConfig))
	assert.False(t, IsCode(err, ErrIO))
	assert.False(t, IsCode(nil, ErrConfig))
	assert.False(t, IsCode(stderrors.New("plain"), ErrConfig))
}

func TestIsCodeThroughWrapping(t *testing.T) {
	inner := New(ErrConfig, "bad", "")
	outer := fmt.Errorf("while loading: %w", inner)

	assert.True(t, IsCode(outer, ErrConfig))
}
