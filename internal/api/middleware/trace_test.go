package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meepleshelf/meeple-api/internal/api/shared"
)

func TestTraceMiddleware(t *testing.T) {
	var captured string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = shared.GetTraceID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	handler := TraceMiddleware(next)

	req := httptest.NewRequest(http.MethodGet, "/boardgame", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.NotEmpty(t, captured, "handler should see a trace ID")
	_, err := uuid.Parse(captured)
	assert.NoError(t, err)

	// A second request gets its own trace ID.
	first := captured
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boardgame", nil))
	assert.NotEqual(t, first, captured)
}
