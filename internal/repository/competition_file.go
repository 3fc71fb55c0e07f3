package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/thepitchdeck/pitchdeck-api/internal/model"
)

// competitionFileRepository stores competitions in a single JSON file.
// Every operation is a whole-file read-modify-write, so a mutex guards
// the file; concurrent writers would otherwise lose updates.
type competitionFileRepository struct {
	path string
	mu   sync.RWMutex
}

// NewCompetitionFileRepository creates a file-backed competition
// repository at the given path. A missing file reads as an empty store
// and is created on the first write.
func NewCompetitionFileRepository(path string) CompetitionRepository {
	return &competitionFileRepository{path: path}
}

func (r *competitionFileRepository) CreateCompetition(
	_ context.Context,
	competition *model.Competition,
) (*model.Competition, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	competitions, err := r.load()
	if err != nil {
		return nil, err
	}

	if competition.ID == "" {
		competition.ID = uuid.NewString()
	}

	competitions = append(competitions, *competition)

	if err := r.save(competitions); err != nil {
		return nil, err
	}

	return competition, nil
}

func (r *competitionFileRepository) GetCompetition(_ context.Context, id string) (*model.Competition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	competitions, err := r.load()
	if err != nil {
		return nil, err
	}

	for i := range competitions {
		if competitions[i].ID == id {
			return &competitions[i], nil
		}
	}

	return nil, ErrCompetitionNotFound
}

func (r *competitionFileRepository) ListCompetitions(_ context.Context) ([]model.Competition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	competitions, err := r.load()
	if err != nil {
		return nil, err
	}

	sort.Slice(competitions, func(i, j int) bool {
		return competitions[i].Deadline.Before(competitions[j].Deadline)
	})

	return competitions, nil
}

func (r *competitionFileRepository) UpdateCompetition(
	_ context.Context,
	id string,
	params UpdateCompetitionParams,
) (*model.Competition, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	competitions, err := r.load()
	if err != nil {
		return nil, err
	}

	for i := range competitions {
		if competitions[i].ID != id {
			continue
		}

		applyCompetitionUpdate(&competitions[i], params)

		if err := r.save(competitions); err != nil {
			return nil, err
		}

		return &competitions[i], nil
	}

	return nil, ErrCompetitionNotFound
}

func (r *competitionFileRepository) DeleteCompetition(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	competitions, err := r.load()
	if err != nil {
		return err
	}

	remaining := competitions[:0]
	for _, competition := range competitions {
		if competition.ID != id {
			remaining = append(remaining, competition)
		}
	}

	if len(remaining) == len(competitions) {
		return ErrCompetitionNotFound
	}

	return r.save(remaining)
}

// load reads the whole store. Callers must hold the mutex.
func (r *competitionFileRepository) load() ([]model.Competition, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []model.Competition{}, nil
		}

		return nil, fmt.Errorf("failed to read competitions file: %w", err)
	}

	var competitions []model.Competition
	if err := json.Unmarshal(data, &competitions); err != nil {
		return nil, fmt.Errorf("failed to decode competitions file: %w", err)
	}

	return competitions, nil
}

// save rewrites the whole store. Callers must hold the mutex for writing.
func (r *competitionFileRepository) save(competitions []model.Competition) error {
	data, err := json.MarshalIndent(competitions, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode competitions: %w", err)
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create competitions directory: %w", err)
		}
	}

	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write competitions file: %w", err)
	}

	return nil
}

func applyCompetitionUpdate(competition *model.Competition, params UpdateCompetitionParams) {
	if params.Title != nil {
		competition.Title = *params.Title
	}
	if params.Organizer != nil {
		competition.Organizer = *params.Organizer
	}
	if params.Logo != nil {
		competition.Logo = *params.Logo
	}
	if params.GradeEligibility != nil {
		competition.GradeEligibility = *params.GradeEligibility
	}
	if params.Deadline != nil {
		competition.Deadline = *params.Deadline
	}
	if params.Prize != nil {
		competition.Prize = *params.Prize
	}
	if params.Status != nil {
		competition.Status = *params.Status
	}
	if params.Description != nil {
		competition.Description = *params.Description
	}
	if params.ApplicationType != nil {
		competition.ApplicationType = *params.ApplicationType
	}
	if params.ApplyURL != nil {
		competition.ApplyURL = *params.ApplyURL
	}
	if params.Frequency != nil {
		competition.Frequency = *params.Frequency
	}
	if params.Dates != nil {
		competition.Dates = params.Dates
	}
	if params.Location != nil {
		competition.Location = *params.Location
	}
	if params.Cost != nil {
		competition.Cost = *params.Cost
	}
}
