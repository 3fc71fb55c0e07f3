package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/thepitchdeck/pitchdeck-api/internal/model"
	"github.com/thepitchdeck/pitchdeck-api/internal/repository"
)

// CompetitionUsecase defines the competition listing use cases.
type CompetitionUsecase interface {
	List(ctx context.Context) ([]model.Competition, error)
	Get(ctx context.Context, id string) (*model.Competition, error)
	Create(ctx context.Context, params CreateCompetitionParams) (*model.Competition, error)
	Update(ctx context.Context, id string, params repository.UpdateCompetitionParams) (*model.Competition, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*model.CompetitionStats, error)
}

// CreateCompetitionParams defines the parameters for creating a listing.
type CreateCompetitionParams struct {
	Title            string
	Organizer        string
	Logo             string
	GradeEligibility string
	Deadline         time.Time
	Prize            string
	Status           string
	Description      string
	ApplicationType  string
	ApplyURL         string
	Frequency        string
	Dates            []string
	Location         string
	Cost             string
}

type competitionUsecase struct {
	competitions repository.CompetitionRepository
}

// NewCompetitionUsecase creates a new CompetitionUsecase instance.
func NewCompetitionUsecase(competitions repository.CompetitionRepository) CompetitionUsecase {
	return &competitionUsecase{competitions: competitions}
}

func (u *competitionUsecase) List(ctx context.Context) ([]model.Competition, error) {
	return u.competitions.ListCompetitions(ctx)
}

func (u *competitionUsecase) Get(ctx context.Context, id string) (*model.Competition, error) {
	return u.competitions.GetCompetition(ctx, id)
}

func (u *competitionUsecase) Create(
	ctx context.Context,
	params CreateCompetitionParams,
) (*model.Competition, error) {
	return u.competitions.CreateCompetition(ctx, &model.Competition{
		Title:            params.Title,
		Organizer:        params.Organizer,
		Logo:             params.Logo,
		GradeEligibility: params.GradeEligibility,
		Deadline:         params.Deadline,
		Prize:            params.Prize,
		Status:           params.Status,
		Description:      params.Description,
		ApplicationType:  params.ApplicationType,
		ApplyURL:         params.ApplyURL,
		Frequency:        params.Frequency,
		Dates:            params.Dates,
		Location:         params.Location,
		Cost:             params.Cost,
	})
}

func (u *competitionUsecase) Update(
	ctx context.Context,
	id string,
	params repository.UpdateCompetitionParams,
) (*model.Competition, error) {
	return u.competitions.UpdateCompetition(ctx, id, params)
}

func (u *competitionUsecase) Delete(ctx context.Context, id string) error {
	return u.competitions.DeleteCompetition(ctx, id)
}

func (u *competitionUsecase) Stats(ctx context.Context) (*model.CompetitionStats, error) {
	competitions, err := u.competitions.ListCompetitions(ctx)
	if err != nil {
		return nil, err
	}

	stats := &model.CompetitionStats{Total: len(competitions)}
	for _, competition := range competitions {
		switch competition.Status {
		case model.StatusOpen:
			stats.Open++
		case model.StatusClosingSoon:
			stats.ClosingSoon++
		case model.StatusClosed:
			stats.Closed++
		}

		if strings.Contains(strings.ToLower(competition.Cost), "free") {
			stats.Free++
		}

		location := strings.ToLower(competition.Location)
		if strings.Contains(location, "virtual") {
			stats.Virtual++
		}
		if strings.Contains(location, "in-person") {
			stats.InPerson++
		}
	}

	return stats, nil
}
