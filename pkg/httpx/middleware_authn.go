package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/educonnect/portal/pkg/slogx"
)

// Principal identifies an authenticated caller.
type Principal struct {
	UserID string
	Role   string
}

// SessionValidator resolves a bearer session token into a Principal.
// Validation must be a pure function of (token, now) against the session
// store; no in-memory session state.
type SessionValidator interface {
	ValidateSession(ctx context.Context, token string) (Principal, error)
}

// AuthnMiddleware validates the Authorization bearer token against the
// session store and injects the resolved principal into the request context.
func AuthnMiddleware(v SessionValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			token := BearerToken(r)
			if token == "" {
				writeUnauthenticated(w, "no session token")
				return
			}

			principal, err := v.ValidateSession(ctx, token)
			if err != nil {
				log.Warn("session validation failed", "err", err)
				writeUnauthenticated(w, "invalid or expired session")
				return
			}

			ctx = context.WithValue(ctx, CtxKeyUserID, principal.UserID)
			ctx = context.WithValue(ctx, CtxKeyRole, principal.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BearerToken extracts the token from an "Authorization: Bearer ..." header.
// Returns "" when the header is missing or malformed.
func BearerToken(r *http.Request) string {
	authz := r.Header.Get("Authorization")
	if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))
}

func writeUnauthenticated(w http.ResponseWriter, msg string) {
	WriteJSON(w, http.StatusUnauthorized, map[string]any{
		"success": false,
		"error":   "unauthenticated",
		"message": msg,
	})
}
