package middleware

import (
	"context"
	"net/http"
	"strings"
)

type ownerKey struct{}

// GuestOwner is the shared cart owner for requests without a bearer
// token. The development backend accepts anonymous cart traffic; only
// checkout requires authentication.
const GuestOwner = "guest"

// Owner resolves the cart owner from the Authorization header and stores
// it on the request context.
func Owner() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			owner := GuestOwner
			if token := BearerToken(r); token != "" {
				owner = token
			}
			ctx := context.WithValue(r.Context(), ownerKey{}, owner)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OwnerFromContext returns the resolved cart owner.
func OwnerFromContext(ctx context.Context) string {
	if owner, ok := ctx.Value(ownerKey{}).(string); ok && owner != "" {
		return owner
	}
	return GuestOwner
}

// BearerToken extracts the bearer token from the request, or "".
func BearerToken(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
