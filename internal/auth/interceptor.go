package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"

	"connectrpc.com/connect"
	"github.com/pfdash/backend/internal/logger"
)

// SchedulerSecretHeader carries the shared secret Cloud Scheduler sends on
// batch procedures.
const SchedulerSecretHeader = "X-Scheduler-Secret"

// DebugImpersonateHeader selects the user in local development.
const DebugImpersonateHeader = "X-Debug-Impersonate-User"

type authenticateFunc func(ctx context.Context, header http.Header) (*UserClaims, error)

// Option configures an auth interceptor.
type Option func(*interceptor)

// WithSchedulerSecret lets the listed procedures authenticate with the
// scheduler secret header instead of a user token. An empty secret
// disables scheduler access.
func WithSchedulerSecret(secret string, procedures ...string) Option {
	return func(i *interceptor) {
		i.schedulerSecret = secret
		for _, p := range procedures {
			i.schedulerProcedures[p] = true
		}
	}
}

// interceptor authenticates unary and server-streaming calls alike.
type interceptor struct {
	authenticate        authenticateFunc
	schedulerSecret     string
	schedulerProcedures map[string]bool
}

func newInterceptor(fn authenticateFunc, opts []Option) *interceptor {
	i := &interceptor{authenticate: fn, schedulerProcedures: make(map[string]bool)}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// AuthInterceptor creates a Connect interceptor for Firebase authentication
func AuthInterceptor(verifier TokenVerifier, opts ...Option) connect.Interceptor {
	return newInterceptor(func(ctx context.Context, header http.Header) (*UserClaims, error) {
		authHeader := header.Get("Authorization")
		if authHeader == "" {
			return nil, connect.NewError(connect.CodeUnauthenticated, errors.New("missing authorization header"))
		}

		token, err := ExtractTokenFromHeader(authHeader)
		if err != nil {
			return nil, connect.NewError(connect.CodeUnauthenticated, err)
		}

		claims, err := verifier.VerifyToken(ctx, token)
		if err != nil {
			return nil, connect.NewError(connect.CodeUnauthenticated, err)
		}
		return claims, nil
	}, opts)
}

func (i *interceptor) authorize(ctx context.Context, procedure string, header http.Header) (context.Context, error) {
	// Skip auth for health checks or other public endpoints
	if isPublicEndpoint(procedure) {
		return ctx, nil
	}

	if provided := header.Get(SchedulerSecretHeader); provided != "" && i.schedulerProcedures[procedure] {
		if i.schedulerSecret == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(i.schedulerSecret)) != 1 {
			return ctx, connect.NewError(connect.CodeUnauthenticated, errors.New("invalid scheduler secret"))
		}
		log := logger.FromContext(ctx)
		log.Debug().Str("procedure", procedure).Msg("authenticated via scheduler secret")
		return WithScheduler(ctx), nil
	}

	claims, err := i.authenticate(ctx, header)
	if err != nil {
		return ctx, err
	}
	return withUserClaims(ctx, claims), nil
}

func (i *interceptor) WrapUnary(next connect.UnaryFunc) connect.UnaryFunc {
	return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		// Outgoing client calls are not authenticated here.
		if req.Spec().IsClient {
			return next(ctx, req)
		}
		ctx, err := i.authorize(ctx, req.Spec().Procedure, req.Header())
		if err != nil {
			return nil, err
		}
		return next(ctx, req)
	}
}

func (i *interceptor) WrapStreamingClient(next connect.StreamingClientFunc) connect.StreamingClientFunc {
	return next
}

func (i *interceptor) WrapStreamingHandler(next connect.StreamingHandlerFunc) connect.StreamingHandlerFunc {
	return func(ctx context.Context, conn connect.StreamingHandlerConn) error {
		ctx, err := i.authorize(ctx, conn.Spec().Procedure, conn.RequestHeader())
		if err != nil {
			return err
		}
		return next(ctx, conn)
	}
}

// isPublicEndpoint checks if an endpoint should be accessible without authentication
func isPublicEndpoint(procedure string) bool {
	publicEndpoints := []string{
		"/health",
		"/ping",
	}

	for _, endpoint := range publicEndpoints {
		if procedure == endpoint {
			return true
		}
	}

	return false
}

// Context keys
type contextKey string

const (
	userClaimsKey contextKey = "user_claims"
	schedulerKey  contextKey = "scheduler"
)

// withUserClaims adds user claims to the context
func withUserClaims(ctx context.Context, claims *UserClaims) context.Context {
	return context.WithValue(ctx, userClaimsKey, claims)
}

// WithUserClaims is the exported version for testing purposes
func WithUserClaims(ctx context.Context, claims *UserClaims) context.Context {
	return withUserClaims(ctx, claims)
}

// GetUserClaims extracts user claims from context
func GetUserClaims(ctx context.Context) (*UserClaims, bool) {
	claims, ok := ctx.Value(userClaimsKey).(*UserClaims)
	return claims, ok
}

// GetUserID is a convenience function to get the user ID from context
func GetUserID(ctx context.Context) (string, bool) {
	if claims, ok := GetUserClaims(ctx); ok {
		return claims.UID, true
	}
	return "", false
}

// WithScheduler marks the context as a scheduler invocation.
func WithScheduler(ctx context.Context) context.Context {
	return context.WithValue(ctx, schedulerKey, true)
}

// IsScheduler reports whether the call was authenticated with the
// scheduler secret.
func IsScheduler(ctx context.Context) bool {
	v, _ := ctx.Value(schedulerKey).(bool)
	return v
}
