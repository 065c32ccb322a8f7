package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

// contextKey is unexported so only this package can read or write the claims
// stored in a request context.
type contextKey struct{}

var claimsKey contextKey

// RequireAuth gates protected routes on a valid bearer token.
//
// The expected header shape is "Authorization: Bearer <token>". A missing or
// empty token rejects with 401 before any handler runs; a token that fails
// verification (bad signature, expired, malformed) rejects with 403. On
// success the decoded claims are attached to the request context for the
// duration of this request only — each request is evaluated independently and
// nothing is persisted.
func RequireAuth(tokens *TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := bearerToken(r)
			if tokenStr == "" {
				writeAuthError(w, http.StatusUnauthorized, "Access denied. No token provided.")
				return
			}

			claims, err := tokens.Verify(tokenStr)
			if err != nil {
				writeAuthError(w, http.StatusForbidden, "Invalid or expired token.")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext returns the claims attached by RequireAuth.
// ok is false on routes that did not pass through the middleware.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*Claims)
	return claims, ok && claims != nil
}

// bearerToken extracts the token from the Authorization header.
// Returns "" when the header is absent or not of the Bearer scheme.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}
