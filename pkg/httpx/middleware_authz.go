package httpx

import "net/http"

// RequireRole gates a route on the authenticated user's role. The caller must
// already have passed through AuthnMiddleware.
func RequireRole(role string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if RoleFromCtx(r.Context()) != role {
				WriteJSON(w, http.StatusForbidden, map[string]any{
					"success": false,
					"error":   "forbidden",
					"message": "insufficient role",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
