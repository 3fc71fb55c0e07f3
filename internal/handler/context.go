package handler

import (
	"context"

	"github.com/thepitchdeck/pitchdeck-api/internal/auth"
)

// contextKey is a private type for context keys, preventing collisions
// with keys set by other packages.
type contextKey struct{}

// sessionKey stores the verified session claims of the current request.
var sessionKey = contextKey{}

// sessionFromContext retrieves the session claims set by requireAuth.
func sessionFromContext(ctx context.Context) (*auth.SessionClaims, bool) {
	claims, ok := ctx.Value(sessionKey).(*auth.SessionClaims)
	return claims, ok
}
