package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	env "github.com/caarlos0/env/v7"
	"github.com/joho/godotenv"
)

// Config holds the client-side settings. The API base URL defaults to the
// backend's fixed development host.
type Config struct {
	APIBaseURL  string        `env:"API_BASE_URL" envDefault:"http://127.0.0.1:8000"`
	TokenFile   string        `env:"TOKEN_FILE"`
	LogLevel    string        `env:"LOG_LEVEL" envDefault:"info"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`
}

// New loads configuration from an optional .env file and the environment.
func New(envPath string) (Config, error) {
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, err
		}
	}

	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, err
	}

	if c.TokenFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, err
		}
		c.TokenFile = filepath.Join(home, ".transport-admin", "session.json")
	}

	return c, nil
}
