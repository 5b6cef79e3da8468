package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasCode(t *testing.T) {
	t.Run("matches direct code", func(t *testing.T) {
		err := New(CodeValidation, "bad name")
		assert.True(t, HasCode(err, CodeValidation))
		assert.False(t, HasCode(err, CodeNotFound))
	})

	t.Run("matches through fmt wrapping", func(t *testing.T) {
		err := fmt.Errorf("create list: %w", New(CodeNotFound, "missing"))
		assert.True(t, HasCode(err, CodeNotFound))
	})

	t.Run("matches nested coded errors", func(t *testing.T) {
		inner := New(CodeUnavailable, "store down")
		err := Wrap(inner, CodeInternal, "load session")
		assert.True(t, HasCode(err, CodeInternal))
		assert.True(t, HasCode(err, CodeUnavailable))
	})

	t.Run("plain errors carry no code", func(t *testing.T) {
		assert.False(t, HasCode(errors.New("boom"), CodeInternal))
		assert.False(t, HasCode(nil, CodeInternal))
	})
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, CodeUnavailable, "session store unavailable")

	require.ErrorIs(t, err, cause)
	assert.Equal(t, "session store unavailable: connection refused", err.Error())
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "List name must be unique", Message(New(CodeValidation, "List name must be unique")))
	assert.Empty(t, Message(New(CodeInternal, "db failed")))
	assert.Empty(t, Message(errors.New("plain")))
}

func TestToHTTPStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeValidation, http.StatusUnprocessableEntity},
		{CodeNotFound, http.StatusNotFound},
		{CodeConflict, http.StatusConflict},
		{CodeBadRequest, http.StatusBadRequest},
		{CodeUnavailable, http.StatusServiceUnavailable},
		{CodeInternal, http.StatusInternalServerError},
		{Code("unknown"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, ToHTTPStatus(tt.code))
		})
	}
}
