package shared

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceID(t *testing.T) {
	t.Parallel() // Enable parallel execution
	ctx := SetTraceID(context.Background())

	traceID := GetTraceID(ctx)
	require.NotEmpty(t, traceID)

	// Trace IDs are UUIDs
	_, err := uuid.Parse(traceID)
	assert.NoError(t, err)

	// Each call produces a fresh ID
	other := GetTraceID(SetTraceID(context.Background()))
	assert.NotEqual(t, traceID, other)

	// Missing trace ID yields an empty string
	assert.Empty(t, GetTraceID(context.Background()))
}
