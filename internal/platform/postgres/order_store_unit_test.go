package postgres

import (
	"testing"

	"github.com/phrazzld/orders-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildOrderUpdate(t *testing.T) {
	t.Parallel() // Enable parallel execution
	name := "Widget"
	quantity := 10

	tests := []struct {
		name          string
		patch         domain.OrderPatch
		expectedQuery string
		expectedArgs  []any
		expectedErr   error
	}{
		{
			name:          "name only",
			patch:         domain.OrderPatch{Name: &name},
			expectedQuery: "UPDATE orders SET name = $1 WHERE id = $2",
			expectedArgs:  []any{"Widget", int64(7)},
		},
		{
			name:          "quantity only",
			patch:         domain.OrderPatch{Quantity: &quantity},
			expectedQuery: "UPDATE orders SET quantity = $1 WHERE id = $2",
			expectedArgs:  []any{10, int64(7)},
		},
		{
			name:          "both fields",
			patch:         domain.OrderPatch{Name: &name, Quantity: &quantity},
			expectedQuery: "UPDATE orders SET name = $1, quantity = $2 WHERE id = $3",
			expectedArgs:  []any{"Widget", 10, int64(7)},
		},
		{
			name:        "empty patch is rejected",
			patch:       domain.OrderPatch{},
			expectedErr: domain.ErrNoFieldsToUpdate,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			query, args, err := buildOrderUpdate(7, tc.patch)

			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				assert.Empty(t, query)
				assert.Nil(t, args)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expectedQuery, query)
			assert.Equal(t, tc.expectedArgs, args)
		})
	}
}

func TestNewPostgresOrderStorePanicsOnNilDB(t *testing.T) {
	t.Parallel() // Enable parallel execution
	assert.Panics(t, func() {
		NewPostgresOrderStore(nil, nil)
	})
}

func TestNewPostgresCatalogStorePanicsOnNilDB(t *testing.T) {
	t.Parallel() // Enable parallel execution
	assert.Panics(t, func() {
		NewPostgresCatalogStore(nil, nil)
	})
}
