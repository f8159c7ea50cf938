package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/orders-api/internal/api/shared"
	"github.com/phrazzld/orders-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceMiddleware(t *testing.T) {
	t.Parallel() // Enable parallel execution
	var seenTraceID string
	var seenLogger bool

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenTraceID = shared.GetTraceID(r.Context())
		_, seenLogger = logger.FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	w := httptest.NewRecorder()

	TraceMiddleware(next).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, seenTraceID, "handler should see a trace ID in context")
	assert.True(t, seenLogger, "handler should see a request-scoped logger in context")
}
