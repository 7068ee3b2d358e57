package auth

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name        string
		authHeader  string
		expectedErr bool
		errContains string
		wantToken   string
	}{
		{
			name:        "empty header",
			authHeader:  "",
			expectedErr: true,
			errContains: "authorization header is required",
		},
		{
			name:        "no bearer prefix",
			authHeader:  "token123",
			expectedErr: true,
			errContains: "must be Bearer token",
		},
		{
			name:        "wrong prefix",
			authHeader:  "Basic token123",
			expectedErr: true,
			errContains: "must be Bearer token",
		},
		{
			name:        "bearer only no token",
			authHeader:  "Bearer",
			expectedErr: true,
			errContains: "must be Bearer token",
		},
		{
			name:        "valid bearer token",
			authHeader:  "Bearer mytoken123",
			expectedErr: false,
			wantToken:   "mytoken123",
		},
		{
			name:        "bearer lowercase",
			authHeader:  "bearer mytoken456",
			expectedErr: false,
			wantToken:   "mytoken456",
		},
		{
			name:        "bearer mixed case",
			authHeader:  "BEARER mytoken789",
			expectedErr: false,
			wantToken:   "mytoken789",
		},
		{
			name:        "token with spaces",
			authHeader:  "Bearer token with spaces",
			expectedErr: false,
			wantToken:   "token with spaces",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := ExtractTokenFromHeader(tt.authHeader)

			if tt.expectedErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}

func TestContextUserClaims(t *testing.T) {
	t.Run("WithUserClaims adds claims to context", func(t *testing.T) {
		ctx := context.Background()
		claims := &UserClaims{
			UID:         "test-uid",
			Email:       "test@example.com",
			DisplayName: "Test User",
			Picture:     "https://example.com/pic.jpg",
			Verified:    true,
		}

		newCtx := WithUserClaims(ctx, claims)

		retrievedClaims, ok := GetUserClaims(newCtx)
		require.True(t, ok)
		assert.Equal(t, claims.UID, retrievedClaims.UID)
		assert.Equal(t, claims.Email, retrievedClaims.Email)
		assert.Equal(t, claims.DisplayName, retrievedClaims.DisplayName)
		assert.Equal(t, claims.Picture, retrievedClaims.Picture)
		assert.Equal(t, claims.Verified, retrievedClaims.Verified)
	})

	t.Run("GetUserClaims returns false for empty context", func(t *testing.T) {
		ctx := context.Background()

		claims, ok := GetUserClaims(ctx)
		assert.False(t, ok)
		assert.Nil(t, claims)
	})

	t.Run("GetUserID returns UID when claims exist", func(t *testing.T) {
		ctx := context.Background()
		claims := &UserClaims{UID: "user-123"}
		ctx = WithUserClaims(ctx, claims)

		uid, ok := GetUserID(ctx)
		assert.True(t, ok)
		assert.Equal(t, "user-123", uid)
	})

	t.Run("GetUserID returns empty for empty context", func(t *testing.T) {
		ctx := context.Background()

		uid, ok := GetUserID(ctx)
		assert.False(t, ok)
		assert.Empty(t, uid)
	})
}

func TestIsPublicEndpoint(t *testing.T) {
	tests := []struct {
		name      string
		procedure string
		expected  bool
	}{
		{"health endpoint", "/health", true},
		{"ping endpoint", "/ping", true},
		{"finance service endpoint", "/pfdash.v1.FinanceService/CreateTransaction", false},
		{"other endpoint", "/api/v1/users", false},
		{"empty endpoint", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := isPublicEndpoint(tt.procedure)
			assert.Equal(t, tt.expected, result)
		})
	}
}

type fakeVerifier struct {
	tokens map[string]string
}

func (f fakeVerifier) VerifyToken(ctx context.Context, idToken string) (*UserClaims, error) {
	uid, ok := f.tokens[idToken]
	if !ok {
		return nil, errors.New("token expired")
	}
	return &UserClaims{UID: uid}, nil
}

const schedulerProcedure = "/pfdash.v1.FinanceService/ProcessRecurringTransactions"

func newTestInterceptor() *interceptor {
	verifier := fakeVerifier{tokens: map[string]string{"good-token": "user-1"}}
	return AuthInterceptor(verifier, WithSchedulerSecret("s3cret", schedulerProcedure)).(*interceptor)
}

func TestInterceptorAuthorize(t *testing.T) {
	tests := []struct {
		name          string
		procedure     string
		header        http.Header
		wantCode      connect.Code
		wantUID       string
		wantScheduler bool
	}{
		{
			name:      "valid token",
			procedure: "/pfdash.v1.FinanceService/GetInsights",
			header:    http.Header{"Authorization": {"Bearer good-token"}},
			wantUID:   "user-1",
		},
		{
			name:      "missing header",
			procedure: "/pfdash.v1.FinanceService/GetInsights",
			header:    http.Header{},
			wantCode:  connect.CodeUnauthenticated,
		},
		{
			name:      "rejected token",
			procedure: "/pfdash.v1.FinanceService/GetInsights",
			header:    http.Header{"Authorization": {"Bearer stale"}},
			wantCode:  connect.CodeUnauthenticated,
		},
		{
			name:      "public endpoint",
			procedure: "/health",
			header:    http.Header{},
		},
		{
			name:          "scheduler secret on scheduler procedure",
			procedure:     schedulerProcedure,
			header:        http.Header{SchedulerSecretHeader: {"s3cret"}},
			wantScheduler: true,
		},
		{
			name:      "wrong scheduler secret",
			procedure: schedulerProcedure,
			header:    http.Header{SchedulerSecretHeader: {"guess"}},
			wantCode:  connect.CodeUnauthenticated,
		},
		{
			name:      "scheduler secret ignored on user procedure",
			procedure: "/pfdash.v1.FinanceService/GetInsights",
			header:    http.Header{SchedulerSecretHeader: {"s3cret"}},
			wantCode:  connect.CodeUnauthenticated,
		},
		{
			name:      "user token still works on scheduler procedure",
			procedure: schedulerProcedure,
			header:    http.Header{"Authorization": {"Bearer good-token"}},
			wantUID:   "user-1",
		},
	}

	i := newTestInterceptor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, err := i.authorize(context.Background(), tt.procedure, tt.header)
			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, connect.CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantScheduler, IsScheduler(ctx))
			uid, _ := GetUserID(ctx)
			assert.Equal(t, tt.wantUID, uid)
		})
	}
}

func TestSchedulerDisabledWithoutSecret(t *testing.T) {
	verifier := fakeVerifier{tokens: map[string]string{}}
	i := AuthInterceptor(verifier, WithSchedulerSecret("", schedulerProcedure)).(*interceptor)

	_, err := i.authorize(context.Background(), schedulerProcedure, http.Header{SchedulerSecretHeader: {"anything"}})
	require.Error(t, err)
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
}

func TestInterceptorWrapUnary(t *testing.T) {
	i := newTestInterceptor()

	var seenUID string
	next := i.WrapUnary(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		seenUID, _ = GetUserID(ctx)
		return connect.NewResponse(&struct{}{}), nil
	})

	req := connect.NewRequest(&struct{}{})
	req.Header().Set("Authorization", "Bearer good-token")
	_, err := next(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "user-1", seenUID)

	_, err = next(context.Background(), connect.NewRequest(&struct{}{}))
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
}

func TestLocalDevInterceptor(t *testing.T) {
	i := LocalDevInterceptor().(*interceptor)

	ctx, err := i.authorize(context.Background(), "/pfdash.v1.FinanceService/GetInsights", http.Header{})
	require.NoError(t, err)
	uid, ok := GetUserID(ctx)
	require.True(t, ok)
	assert.Equal(t, "local-dev-user", uid)

	ctx, err = i.authorize(context.Background(), "/pfdash.v1.FinanceService/GetInsights",
		http.Header{DebugImpersonateHeader: {"alice"}})
	require.NoError(t, err)
	claims, ok := GetUserClaims(ctx)
	require.True(t, ok)
	assert.Equal(t, "alice", claims.UID)
	assert.Equal(t, "alice@debug.local", claims.Email)
}

func TestClaimsFromToken(t *testing.T) {
	claims := claimsFromToken("uid-1", map[string]interface{}{
		"email":          "a@example.com",
		"email_verified": true,
		"name":           "Ann",
		"picture":        42, // wrong type is ignored
	})

	assert.Equal(t, "uid-1", claims.UID)
	assert.Equal(t, "a@example.com", claims.Email)
	assert.Equal(t, "Ann", claims.DisplayName)
	assert.Empty(t, claims.Picture)
	assert.True(t, claims.Verified)
}
