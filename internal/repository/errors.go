package repository

import "errors"

// Sentinel errors shared by all store implementations. Driver-specific
// errors are translated at the repository boundary so that callers can
// match with errors.Is regardless of the backend.
var (
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrUserNotFound        = errors.New("user not found")
	ErrCompetitionNotFound = errors.New("competition not found")
)
