package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("carries message and status", func(t *testing.T) {
		err := New("Boardgame not found", http.StatusNotFound)
		assert.Equal(t, "Boardgame not found", err.Message)
		assert.Equal(t, http.StatusNotFound, err.Status)
		assert.Equal(t, "Boardgame not found", err.Error())
	})

	t.Run("zero status defaults to 500", func(t *testing.T) {
		err := New("something broke", 0)
		assert.Equal(t, http.StatusInternalServerError, err.Status)
	})
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, BadRequest("bad").Status)
	assert.Equal(t, http.StatusNotFound, NotFound("missing").Status)
}

func TestAs(t *testing.T) {
	t.Run("extracts a typed error", func(t *testing.T) {
		appErr, ok := As(NotFound("Favorite not found"))
		require.True(t, ok)
		assert.Equal(t, http.StatusNotFound, appErr.Status)
		assert.Equal(t, "Favorite not found", appErr.Message)
	})

	t.Run("extracts through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("handler: %w", BadRequest("Missing required information"))
		appErr, ok := As(wrapped)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, appErr.Status)
	})

	t.Run("rejects untyped errors", func(t *testing.T) {
		_, ok := As(errors.New("connection refused"))
		assert.False(t, ok)
	})

	t.Run("rejects nil", func(t *testing.T) {
		_, ok := As(nil)
		assert.False(t, ok)
	})
}
