package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/thepitchdeck/pitchdeck-api/internal/auth"
)

const requestIDHeader = "X-Request-ID"

// withRequestID tags every request with an id and a request-scoped
// logger, reusing the caller's id when one is supplied.
func (h *Handler) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		logger := h.logger.With().Str("request_id", requestID).Logger()
		r = r.WithContext(logger.WithContext(r.Context()))

		w.Header().Set(requestIDHeader, requestID)
		next.ServeHTTP(w, r)
	})
}

// withLogging logs one line per completed request.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		zerolog.Ctx(r.Context()).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", recorder.status).
			Dur("duration", time.Since(start)).
			Msg("request handled")
	})
}

// requireAuth rejects requests without a valid session cookie and stores
// the verified claims in the request context.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.auth == nil {
			h.respondMessage(w, http.StatusServiceUnavailable, msgServiceUnavailable)
			return
		}

		cookie, err := r.Cookie(auth.CookieName)
		if err != nil || cookie.Value == "" {
			h.respondMessage(w, http.StatusUnauthorized, msgNotAuthenticated)
			return
		}

		claims, err := h.tokens.Verify(cookie.Value)
		if err != nil {
			zerolog.Ctx(r.Context()).Warn().Err(err).Msg("rejected session token")
			h.respondMessage(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), sessionKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireCredentialStore guards the endpoints that need user persistence
// when the server runs without MongoDB.
func (h *Handler) requireCredentialStore(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.auth == nil {
			h.respondMessage(w, http.StatusServiceUnavailable, msgServiceUnavailable)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
