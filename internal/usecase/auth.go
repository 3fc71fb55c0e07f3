// Package usecase contains the application's business logic, between the
// HTTP handlers and the stores.
package usecase

import (
	"context"
	"errors"

	"github.com/thepitchdeck/pitchdeck-api/internal/model"
	"github.com/thepitchdeck/pitchdeck-api/internal/repository"
	"github.com/thepitchdeck/pitchdeck-api/internal/security"
)

// AuthUsecase defines the authentication and favourites use cases.
type AuthUsecase interface {
	// SignUp creates a new user. No session is issued; the caller logs
	// in separately.
	SignUp(ctx context.Context, params SignUpParams) (*model.User, error)

	// Login verifies credentials and returns the user. Unknown email and
	// wrong password are indistinguishable to the caller.
	Login(ctx context.Context, params LoginParams) (*model.User, error)

	// CurrentUser loads the user referenced by a verified session.
	CurrentUser(ctx context.Context, userID string) (*model.User, error)

	// ToggleFavourite flips the membership of a competition id in the
	// user's favourites and returns the updated list. Calling it twice
	// with the same id restores the original list.
	ToggleFavourite(ctx context.Context, userID, competitionID string) ([]string, error)

	// ListFavourites resolves the user's favourite ids to competition
	// objects. Ids that no longer resolve are skipped.
	ListFavourites(ctx context.Context, userID string) ([]model.Competition, error)
}

// SignUpParams defines the parameters for user registration.
type SignUpParams struct {
	FirstName  string
	LastName   string
	Email      string
	Password   string
	Role       string
	School     string
	Grade      string
	Approved   *bool
	Favourites []string
}

// LoginParams defines the parameters for user login.
type LoginParams struct {
	Email    string
	Password string
}

var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type authUsecase struct {
	users        repository.UserRepository
	competitions repository.CompetitionRepository
}

// NewAuthUsecase creates a new AuthUsecase instance.
func NewAuthUsecase(
	users repository.UserRepository,
	competitions repository.CompetitionRepository,
) AuthUsecase {
	return &authUsecase{
		users:        users,
		competitions: competitions,
	}
}

func (u *authUsecase) SignUp(ctx context.Context, params SignUpParams) (*model.User, error) {
	passwordHash, err := security.HashPassword(params.Password)
	if err != nil {
		return nil, err
	}

	// New accounts are approved unless the caller says otherwise.
	approved := true
	if params.Approved != nil {
		approved = *params.Approved
	}

	user, err := u.users.CreateUser(ctx, &model.User{
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		Email:        params.Email,
		PasswordHash: passwordHash,
		Role:         params.Role,
		School:       params.School,
		Grade:        params.Grade,
		Approved:     approved,
		Favourites:   params.Favourites,
	})
	if err != nil {
		if errors.Is(err, repository.ErrEmailAlreadyExists) {
			return nil, ErrUserAlreadyExists
		}

		return nil, err
	}

	return user, nil
}

func (u *authUsecase) Login(ctx context.Context, params LoginParams) (*model.User, error) {
	user, err := u.users.GetUserByEmail(ctx, params.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}

		return nil, err
	}

	if ok, err := security.VerifyPassword(params.Password, user.PasswordHash); err != nil {
		return nil, err
	} else if !ok {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (u *authUsecase) CurrentUser(ctx context.Context, userID string) (*model.User, error) {
	return u.users.GetUser(ctx, userID)
}

func (u *authUsecase) ToggleFavourite(ctx context.Context, userID, competitionID string) ([]string, error) {
	user, err := u.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	favourites := make([]string, 0, len(user.Favourites)+1)
	found := false
	for _, id := range user.Favourites {
		// Remove only the first matching entry.
		if !found && id == competitionID {
			found = true
			continue
		}
		favourites = append(favourites, id)
	}

	if !found {
		favourites = append(favourites, competitionID)
	}

	updated, err := u.users.UpdateFavourites(ctx, userID, favourites)
	if err != nil {
		return nil, err
	}

	return updated.Favourites, nil
}

func (u *authUsecase) ListFavourites(ctx context.Context, userID string) ([]model.Competition, error) {
	user, err := u.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	resolved := []model.Competition{}
	for _, id := range user.Favourites {
		competition, err := u.competitions.GetCompetition(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrCompetitionNotFound) {
				continue
			}

			return nil, err
		}

		resolved = append(resolved, *competition)
	}

	return resolved, nil
}
