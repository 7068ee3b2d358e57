package auth

import (
	"context"
	"errors"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireAuth(t *testing.T) {
	t.Run("returns error when no claims in context", func(t *testing.T) {
		ctx := context.Background()
		claims, err := RequireAuth(ctx)
		assert.Nil(t, claims)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unauthenticated")
	})

	t.Run("returns claims when present in context", func(t *testing.T) {
		ctx := context.Background()
		expectedClaims := &UserClaims{UID: "user-123", Email: "test@example.com"}
		ctx = withUserClaims(ctx, expectedClaims)

		claims, err := RequireAuth(ctx)
		require.NoError(t, err)
		assert.Equal(t, expectedClaims.UID, claims.UID)
		assert.Equal(t, expectedClaims.Email, claims.Email)
	})
}

func TestRequireUserAccess(t *testing.T) {
	t.Run("returns error when no claims in context", func(t *testing.T) {
		claims, err := RequireUserAccess(context.Background(), "user-123")
		assert.Nil(t, claims)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unauthenticated")
	})

	t.Run("returns error when user ID does not match", func(t *testing.T) {
		ctx := withUserClaims(context.Background(), &UserClaims{UID: "user-123"})

		claims, err := RequireUserAccess(ctx, "user-456")
		assert.Nil(t, claims)
		assert.Error(t, err)
		assert.Equal(t, connect.CodePermissionDenied, connect.CodeOf(err))
		assert.Contains(t, err.Error(), "cannot access another user's resources")
	})

	t.Run("returns claims when user ID matches", func(t *testing.T) {
		ctx := withUserClaims(context.Background(), &UserClaims{UID: "user-123"})

		claims, err := RequireUserAccess(ctx, "user-123")
		require.NoError(t, err)
		assert.Equal(t, "user-123", claims.UID)
	})

	t.Run("returns claims when user ID is empty", func(t *testing.T) {
		ctx := withUserClaims(context.Background(), &UserClaims{UID: "user-123"})

		claims, err := RequireUserAccess(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, "user-123", claims.UID)
	})
}

func TestResolveBatchScope(t *testing.T) {
	t.Run("scheduler may target all users", func(t *testing.T) {
		userID, err := ResolveBatchScope(WithScheduler(context.Background()), "")
		require.NoError(t, err)
		assert.Empty(t, userID)
	})

	t.Run("scheduler may target one user", func(t *testing.T) {
		userID, err := ResolveBatchScope(WithScheduler(context.Background()), "user-9")
		require.NoError(t, err)
		assert.Equal(t, "user-9", userID)
	})

	t.Run("user is scoped to self", func(t *testing.T) {
		ctx := withUserClaims(context.Background(), &UserClaims{UID: "user-1"})
		userID, err := ResolveBatchScope(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, "user-1", userID)
	})

	t.Run("user cannot target another user", func(t *testing.T) {
		ctx := withUserClaims(context.Background(), &UserClaims{UID: "user-1"})
		_, err := ResolveBatchScope(ctx, "user-2")
		assert.Equal(t, connect.CodePermissionDenied, connect.CodeOf(err))
	})

	t.Run("anonymous is rejected", func(t *testing.T) {
		_, err := ResolveBatchScope(context.Background(), "")
		assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
	})
}

func TestNormalizePageSize(t *testing.T) {
	tests := []struct {
		name     string
		input    int32
		expected int32
	}{
		{"zero defaults to 100", 0, 100},
		{"negative defaults to 100", -5, 100},
		{"valid size unchanged", 50, 50},
		{"max size unchanged", 1000, 1000},
		{"over max capped to 1000", 5000, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizePageSize(tt.input))
		})
	}
}

func TestWrapStoreError(t *testing.T) {
	t.Run("nil error returns nil", func(t *testing.T) {
		assert.Nil(t, WrapStoreError("create transaction", nil))
	})

	t.Run("wraps error with operation context", func(t *testing.T) {
		original := errors.New("database connection failed")
		wrapped := WrapStoreError("create transaction", original)
		require.Error(t, wrapped)
		assert.Equal(t, "failed to create transaction: database connection failed", wrapped.Error())
		assert.ErrorIs(t, wrapped, original)
	})
}
