package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeDocs(t *testing.T) {
	t.Parallel() // Enable parallel execution
	handler := NewDocsHandler(testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api-docs", nil)
	w := httptest.NewRecorder()
	handler.ServeDocs(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var docs APIDocs
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &docs))
	assert.NotEmpty(t, docs.Title)
	require.NotEmpty(t, docs.Routes)

	// Every CRUD route is cataloged
	var seen []string
	for _, route := range docs.Routes {
		seen = append(seen, route.Method+" "+route.Path)
	}
	assert.Contains(t, seen, "GET /orders")
	assert.Contains(t, seen, "POST /orders")
	assert.Contains(t, seen, "PATCH /orders/{id}")
	assert.Contains(t, seen, "PUT /orders/{id}")
	assert.Contains(t, seen, "DELETE /orders/{id}")
	assert.Contains(t, seen, "GET /student")
	assert.Contains(t, seen, "GET /foods")
}
