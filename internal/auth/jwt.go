// Package auth implements session tokens and the session cookie contract.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the fixed lifetime of a session token. There is no refresh
// or rotation; users re-authenticate after expiry.
const TokenTTL = 7 * 24 * time.Hour

// ErrInvalidToken is returned by Verify for any token that is tampered
// with, malformed, signed with the wrong key, or expired.
var ErrInvalidToken = errors.New("invalid or expired token")

// SessionClaims is the payload carried by a session token.
type SessionClaims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenAuthenticator issues and verifies HS256-signed session tokens.
type TokenAuthenticator struct {
	secret string
}

// NewTokenAuthenticator creates a new TokenAuthenticator instance.
func NewTokenAuthenticator(secret string) TokenAuthenticator {
	return TokenAuthenticator{secret: secret}
}

// Issue signs a session token for the given user with a TokenTTL expiry.
func (a *TokenAuthenticator) Issue(userID, email string) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenStr, err := token.SignedString([]byte(a.secret))
	if err != nil {
		return "", err
	}

	return tokenStr, nil
}

// Verify parses and validates a session token and returns its claims.
// Any failure collapses into ErrInvalidToken; callers treat all invalid
// tokens the same way.
func (a *TokenAuthenticator) Verify(tokenStr string) (*SessionClaims, error) {
	claims := &SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return []byte(a.secret), nil
	},
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
