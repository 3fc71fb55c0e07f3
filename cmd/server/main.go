package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/thepitchdeck/pitchdeck-api/internal/auth"
	"github.com/thepitchdeck/pitchdeck-api/internal/config"
	"github.com/thepitchdeck/pitchdeck-api/internal/handler"
	"github.com/thepitchdeck/pitchdeck-api/internal/repository"
	"github.com/thepitchdeck/pitchdeck-api/internal/usecase"
	"github.com/thepitchdeck/pitchdeck-api/internal/validation"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := zerolog.New(os.Stdout).With().
		Timestamp().
		Str("service", "pitchdeck-api").
		Logger()

	cfg, err := config.New()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	validate, err := validation.New()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build request validator")
	}

	tokens := auth.NewTokenAuthenticator(cfg.JWTSecret)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		users        repository.UserRepository
		competitions repository.CompetitionRepository
	)

	if cfg.MongoConfigured() {
		client, err := mongo.Connect(options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to MongoDB")
		}
		defer func() {
			if err := client.Disconnect(context.Background()); err != nil {
				logger.Error().Err(err).Msg("failed to disconnect from MongoDB")
			}
		}()

		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			logger.Fatal().Err(err).Msg("failed to ping MongoDB")
		}

		db := client.Database(cfg.MongoDatabase)
		users = repository.NewUserMongoRepository(ctx, &logger, db)
		competitions = repository.NewCompetitionMongoRepository(ctx, &logger, db)
	} else {
		logger.Warn().
			Str("file", cfg.CompetitionsFile).
			Msg("MONGO_URI is not set; serving competitions from the local file and disabling auth endpoints")
		competitions = repository.NewCompetitionFileRepository(cfg.CompetitionsFile)
	}

	var authUsecase usecase.AuthUsecase
	if users != nil {
		authUsecase = usecase.NewAuthUsecase(users, competitions)
	}
	competitionUsecase := usecase.NewCompetitionUsecase(competitions)

	h := handler.NewHandler(authUsecase, competitionUsecase, tokens, validate, &logger, handler.Options{
		SecureCookies:        cfg.IsProduction(),
		MountCompetitionCRUD: !cfg.MongoConfigured(),
	})

	server := &http.Server{
		Addr:              cfg.Address,
		Handler:           h.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shut down http server")
		}
	}()

	logger.Info().Str("address", cfg.Address).Msg("starting http server")

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("http server stopped unexpectedly")
	}

	logger.Info().Msg("server shut down gracefully")
}
