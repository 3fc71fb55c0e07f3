package repository

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/thepitchdeck/pitchdeck-api/internal/model"
)

// CompetitionRepository defines the interface for competition storage.
// Listings are always returned sorted by deadline, earliest first.
type CompetitionRepository interface {
	CreateCompetition(ctx context.Context, competition *model.Competition) (*model.Competition, error)
	GetCompetition(ctx context.Context, id string) (*model.Competition, error)
	ListCompetitions(ctx context.Context) ([]model.Competition, error)
	UpdateCompetition(ctx context.Context, id string, params UpdateCompetitionParams) (*model.Competition, error)
	DeleteCompetition(ctx context.Context, id string) error
}

// UpdateCompetitionParams defines the optional fields of a partial update.
// Only non-nil fields are applied.
type UpdateCompetitionParams struct {
	Title            *string
	Organizer        *string
	Logo             *string
	GradeEligibility *string
	Deadline         *time.Time
	Prize            *string
	Status           *string
	Description      *string
	ApplicationType  *string
	ApplyURL         *string
	Frequency        *string
	Dates            []string
	Location         *string
	Cost             *string
}

const competitionCollection = "competitions"

type competitionMongoRepository struct {
	db *mongo.Database
}

// NewCompetitionMongoRepository creates a MongoDB-backed competition
// repository.
func NewCompetitionMongoRepository(
	ctx context.Context,
	logger *zerolog.Logger,
	db *mongo.Database,
) CompetitionRepository {
	collection := db.Collection(competitionCollection)

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "deadline", Value: 1}},
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create competition indexes")
	}

	return &competitionMongoRepository{db: db}
}

func (r *competitionMongoRepository) CreateCompetition(
	ctx context.Context,
	competition *model.Competition,
) (*model.Competition, error) {
	if competition.ID == "" {
		competition.ID = bson.NewObjectID().Hex()
	}

	_, err := r.db.Collection(competitionCollection).InsertOne(ctx, competition)
	if err != nil {
		return nil, err
	}

	return competition, nil
}

func (r *competitionMongoRepository) GetCompetition(ctx context.Context, id string) (*model.Competition, error) {
	result := r.db.Collection(competitionCollection).FindOne(ctx, bson.M{"_id": id})
	if err := result.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCompetitionNotFound
		}

		return nil, err
	}

	var competition model.Competition
	if err := result.Decode(&competition); err != nil {
		return nil, err
	}

	return &competition, nil
}

func (r *competitionMongoRepository) ListCompetitions(ctx context.Context) ([]model.Competition, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "deadline", Value: 1}})

	cursor, err := r.db.Collection(competitionCollection).Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	competitions := []model.Competition{}
	if err := cursor.All(ctx, &competitions); err != nil {
		return nil, err
	}

	return competitions, nil
}

func (r *competitionMongoRepository) UpdateCompetition(
	ctx context.Context,
	id string,
	params UpdateCompetitionParams,
) (*model.Competition, error) {
	updateMap := buildCompetitionUpdate(params)
	if len(updateMap) == 0 {
		return r.GetCompetition(ctx, id)
	}

	result := r.db.Collection(competitionCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updateMap},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if err := result.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCompetitionNotFound
		}

		return nil, err
	}

	var competition model.Competition
	if err := result.Decode(&competition); err != nil {
		return nil, err
	}

	return &competition, nil
}

func (r *competitionMongoRepository) DeleteCompetition(ctx context.Context, id string) error {
	result, err := r.db.Collection(competitionCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return ErrCompetitionNotFound
	}

	return nil
}

func buildCompetitionUpdate(params UpdateCompetitionParams) bson.M {
	updateMap := bson.M{}

	if params.Title != nil {
		updateMap["title"] = *params.Title
	}
	if params.Organizer != nil {
		updateMap["organizer"] = *params.Organizer
	}
	if params.Logo != nil {
		updateMap["logo"] = *params.Logo
	}
	if params.GradeEligibility != nil {
		updateMap["grade_eligibility"] = *params.GradeEligibility
	}
	if params.Deadline != nil {
		updateMap["deadline"] = *params.Deadline
	}
	if params.Prize != nil {
		updateMap["prize"] = *params.Prize
	}
	if params.Status != nil {
		updateMap["status"] = *params.Status
	}
	if params.Description != nil {
		updateMap["description"] = *params.Description
	}
	if params.ApplicationType != nil {
		updateMap["application_type"] = *params.ApplicationType
	}
	if params.ApplyURL != nil {
		updateMap["apply_url"] = *params.ApplyURL
	}
	if params.Frequency != nil {
		updateMap["frequency"] = *params.Frequency
	}
	if params.Dates != nil {
		updateMap["dates"] = params.Dates
	}
	if params.Location != nil {
		updateMap["location"] = *params.Location
	}
	if params.Cost != nil {
		updateMap["cost"] = *params.Cost
	}

	return updateMap
}
