// Package auth provides the authentication gate for protected routes.
//
// Two credential forms are accepted: HTTP Basic (user/password from config)
// and a static X-API-Key header. Both are compared in constant time so
// response timing leaks nothing about how much of a guess was correct.
// This is deliberately simple — suitable for a service running behind a
// firewall, not for Internet-facing multi-user auth.
package auth

import (
	"crypto/subtle"
	"net/http"

	"github.com/ghuser/inventory/pkg/httpx"
	"github.com/ghuser/inventory/pkg/logger"
)

const apiKeyHeader = "X-API-Key"

// Credentials holds the configured secrets the middleware checks against.
// APIKey may be empty, in which case only Basic auth is accepted.
type Credentials struct {
	User     string
	Password string
	APIKey   string
}

// RequireAuth is a chi middleware that enforces authentication on every
// request passing through it. A valid X-API-Key header or valid Basic
// credentials admit the request; anything else is rejected with 401 and a
// WWW-Authenticate challenge.
//
// After this middleware, handlers can safely call auth.PrincipalFromCtx(r.Context()).
func RequireAuth(creds Credentials, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if creds.APIKey != "" && equal(r.Header.Get(apiKeyHeader), creds.APIKey) {
				ctx := WithPrincipal(r.Context(), "api-key")
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			user, pwd, ok := r.BasicAuth()
			if !ok {
				challenge(w)
				return
			}
			if !equal(user, creds.User) || !equal(pwd, creds.Password) {
				log.WarnContext(r.Context(), "rejected credentials", "user", user)
				challenge(w)
				return
			}

			ctx := WithPrincipal(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func challenge(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Basic realm="inventory"`)
	httpx.JSONError(w, http.StatusUnauthorized, "Incorrect username or password")
}

// equal compares two strings in constant time.
func equal(got, want string) bool {
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
