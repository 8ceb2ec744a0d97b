package auth

import (
	"context"
	"errors"
)

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const principalKey contextKey = "principal"

// ErrPrincipalNotFound is returned when no principal exists in the request context.
// Handlers should return 401 when this error occurs.
var ErrPrincipalNotFound = errors.New("principal not found in context")

// PrincipalFromCtx extracts the authenticated principal from the request context.
// Returns ErrPrincipalNotFound for unauthenticated requests.
func PrincipalFromCtx(ctx context.Context) (string, error) {
	p, ok := ctx.Value(principalKey).(string)
	if !ok || p == "" {
		return "", ErrPrincipalNotFound
	}
	return p, nil
}

// WithPrincipal returns a new context with the given principal attached.
// Used by the authentication middleware after validating credentials.
func WithPrincipal(ctx context.Context, principal string) context.Context {
	return context.WithValue(ctx, principalKey, principal)
}
