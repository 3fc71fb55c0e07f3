package auth

import (
	"net/http"
	"time"
)

// CookieName is the name of the HTTP cookie carrying the session token.
const CookieName = "token"

// cookieMaxAge matches the token lifetime, in seconds.
const cookieMaxAge = int(TokenTTL / time.Second)

// SetSessionCookie attaches the session token to the response. The cookie
// is HTTP-only and SameSite=Lax; secure should be true in production so
// the cookie is only sent over TLS.
func SetSessionCookie(w http.ResponseWriter, token string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   cookieMaxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie immediately.
func ClearSessionCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
