// Package handler implements the HTTP transport layer: routing,
// middleware, request decoding and validation, and the mapping of
// usecase errors to HTTP responses.
package handler

import (
	"github.com/rs/zerolog"

	"github.com/thepitchdeck/pitchdeck-api/internal/auth"
	"github.com/thepitchdeck/pitchdeck-api/internal/usecase"
	"github.com/thepitchdeck/pitchdeck-api/internal/validation"
)

// Handler holds the dependencies of every HTTP endpoint.
type Handler struct {
	// auth is nil when the credential store is not configured; the
	// affected endpoints then answer 503.
	auth         usecase.AuthUsecase
	competitions usecase.CompetitionUsecase
	tokens       auth.TokenAuthenticator
	validate     *validation.Validator

	// secureCookies turns on the Secure flag of the session cookie.
	secureCookies bool

	// mountCompetitionCRUD exposes the by-id competition routes, which
	// exist only for the file-backed store.
	mountCompetitionCRUD bool

	logger *zerolog.Logger
}

// Options carries the environment-dependent handler settings.
type Options struct {
	SecureCookies        bool
	MountCompetitionCRUD bool
}

// NewHandler creates a new Handler instance.
func NewHandler(
	authUsecase usecase.AuthUsecase,
	competitions usecase.CompetitionUsecase,
	tokens auth.TokenAuthenticator,
	validate *validation.Validator,
	logger *zerolog.Logger,
	opts Options,
) *Handler {
	return &Handler{
		auth:                 authUsecase,
		competitions:         competitions,
		tokens:               tokens,
		validate:             validate,
		secureCookies:        opts.SecureCookies,
		mountCompetitionCRUD: opts.MountCompetitionCRUD,
		logger:               logger,
	}
}
