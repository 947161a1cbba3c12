package session

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiresAt peeks at the stored token's exp claim without verifying
// the signature; the backend remains the authority on token validity.
// The second return is false when no token is stored or the token carries
// no parseable expiry.
func (s *Store) TokenExpiresAt(ctx context.Context) (time.Time, bool) {
	token, err := s.Token(ctx)
	if err != nil || strings.TrimSpace(token) == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	expiry, err := claims.GetExpirationTime()
	if err != nil || expiry == nil {
		return time.Time{}, false
	}
	return expiry.Time, true
}
