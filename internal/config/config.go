package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the server configuration loaded from environment variables.
type Config struct {
	// Address is the TCP address the HTTP server listens on.
	Address string `env:"ADDRESS" envDefault:":8080"`

	// Environment is "development" or "production". In production the
	// session cookie carries the Secure flag.
	Environment string `env:"ENVIRONMENT" envDefault:"development"`

	// JWTSecret signs session tokens. There is deliberately no default:
	// the server refuses to start without an explicit secret.
	JWTSecret string `env:"JWT_SECRET"`

	// MongoURI is the MongoDB connection string. When unset the server
	// runs in a reduced mode: competitions are served from the local
	// JSON file and auth endpoints return 503.
	MongoURI      string `env:"MONGO_URI"`
	MongoDatabase string `env:"MONGO_DATABASE" envDefault:"pitchdeck"`

	// CompetitionsFile is the path of the file-backed competition store
	// used when MongoDB is not configured.
	CompetitionsFile string `env:"COMPETITIONS_FILE" envDefault:"data/competitions.json"`
}

// New creates a Config instance from environment variables.
func New() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate checks that the configuration is usable.
func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("missing JWT_SECRET environment variable")
	}

	return nil
}

// IsProduction reports whether the server runs in a production-like
// environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// MongoConfigured reports whether a MongoDB connection string was provided.
func (c *Config) MongoConfigured() bool {
	return c.MongoURI != ""
}
