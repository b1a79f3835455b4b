package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// APIBaseURL is the root of the marketplace REST API, including the
	// /api prefix.
	APIBaseURL string `envconfig:"API_BASE_URL" default:"http://localhost:8000/api"`
	// SessionDBPath is the SQLite file holding the persisted tokens.
	SessionDBPath string `envconfig:"SESSION_DB_PATH" default:".gmumarket/session.db"`
	Environment   string `envconfig:"ENVIRONMENT" default:"development"`
}

func Load() (*Config, error) {
	godotenv.Load()

	var cfg Config
	if err := envconfig.Process("GMUMARKET", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
