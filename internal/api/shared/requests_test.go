package shared

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	t.Run("decodes a valid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/test",
			strings.NewReader(`{"name": "Catan", "category": 1}`))

		var body struct {
			Name     any `json:"name"`
			Category any `json:"category"`
		}
		require.NoError(t, DecodeJSON(req, &body))
		assert.Equal(t, "Catan", body.Name)
		assert.Equal(t, float64(1), body.Category)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(`{"name":`))

		var body map[string]any
		assert.Error(t, DecodeJSON(req, &body))
	})
}

func TestIsMissing(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		missing bool
	}{
		{"nil", nil, true},
		{"empty string", "", true},
		{"zero number", float64(0), true},
		{"false", false, true},
		{"non-empty string", "Catan", false},
		{"non-zero number", float64(7), false},
		{"true", true, false},
		{"negative number counts as present", float64(-1), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.missing, IsMissing(tc.value))
		})
	}
}
