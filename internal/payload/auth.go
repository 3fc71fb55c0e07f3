// Package payload defines the request DTOs validated at the HTTP
// boundary before any handler logic runs.
package payload

// SignUpRequest is the body of POST /api/auth/signup.
type SignUpRequest struct {
	FirstName  string   `json:"firstName"  validate:"required"`
	LastName   string   `json:"lastName"   validate:"required"`
	Email      string   `json:"email"      validate:"required,email"`
	Password   string   `json:"password"   validate:"required,min=6"`
	Role       string   `json:"role"       validate:"required,oneof=competitor organizer"`
	School     string   `json:"school"     validate:"required"`
	Grade      string   `json:"grade"      validate:"required,oneof=9 10 11 12"`
	Approved   *bool    `json:"approved"   validate:"omitempty"`
	Favourites []string `json:"favourites" validate:"omitempty,dive,required"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// ToggleFavouriteRequest is the body of POST /api/auth/favourites.
type ToggleFavouriteRequest struct {
	CompetitionID string `json:"competitionId"`
}
