package domainerrors

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasCode(t *testing.T) {
	t.Run("direct error", func(t *testing.T) {
		err := New(CodeValidation, "ssin is required")
		assert.True(t, HasCode(err, CodeValidation))
		assert.False(t, HasCode(err, CodeInternal))
	})

	t.Run("wrapped by fmt", func(t *testing.T) {
		err := fmt.Errorf("handler: %w", New(CodeBadRequest, "bad body"))
		assert.True(t, HasCode(err, CodeBadRequest))
	})

	t.Run("plain error", func(t *testing.T) {
		assert.False(t, HasCode(context.Canceled, CodeInternal))
	})
}

func TestWrap(t *testing.T) {
	err := Wrap(context.DeadlineExceeded, CodeTimeout, "validation interrupted")

	assert.True(t, Is(err, context.DeadlineExceeded))
	assert.Equal(t, "validation interrupted: context deadline exceeded", err.Error())

	de, ok := As(err)
	require.True(t, ok)
	assert.Equal(t, CodeTimeout, de.Code)
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(CodeValidation))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(CodeBadRequest))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(CodeNotFound))
	assert.Equal(t, http.StatusGatewayTimeout, HTTPStatus(CodeTimeout))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(CodeInternal))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(Code("unknown")))
}
