package middleware

import (
	"net/http"
	"strings"

	"github.com/planmate/planmate/internal/platform/session"
	"github.com/planmate/planmate/internal/ports"
)

// Session returns middleware that resolves the bearer token of each request
// against the session store and attaches the bound user to the request
// context. Requests without a token, or with an unknown or expired one, pass
// through untouched; whether anonymity is acceptable is decided per
// operation by the service layer, not here.
func Session(store ports.SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			u, ok := store.Resolve(token)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			ctx := session.WithUser(r.Context(), u)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. Returns an empty string for any other scheme.
func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(auth) <= len(prefix) || !strings.EqualFold(auth[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(auth[len(prefix):])
}
