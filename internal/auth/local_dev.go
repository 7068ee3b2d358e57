package auth

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
)

// LocalDevInterceptor provides a mock user context for local development.
// The X-Debug-Impersonate-User header switches to another user.
// ONLY use this in development - never in production!
func LocalDevInterceptor(opts ...Option) connect.Interceptor {
	return newInterceptor(func(ctx context.Context, header http.Header) (*UserClaims, error) {
		if impersonate := header.Get(DebugImpersonateHeader); impersonate != "" {
			return &UserClaims{
				UID:   impersonate,
				Email: impersonate + "@debug.local",
			}, nil
		}
		return &UserClaims{
			UID:         "local-dev-user",
			Email:       "dev@localhost",
			DisplayName: "Local Dev User",
			Verified:    true,
		}, nil
	}, opts)
}
