package fakeua

import (
	"errors"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config carries the tunables that can be set through the environment. Every
// field has a usable default, so no variable is required for normal operation.
type Config struct {
	// CachePath overrides the cache file location; empty means the
	// conventional file in the platform temp directory.
	CachePath string `env:"FAKEUA_CACHE_FILE"`

	// CacheTTL is how long fetched records stay fresh.
	CacheTTL time.Duration `env:"FAKEUA_CACHE_TTL" envDefault:"24h"`

	// HTTPTimeout bounds each fetch attempt.
	HTTPTimeout time.Duration `env:"FAKEUA_HTTP_TIMEOUT" envDefault:"10s"`

	// SourceURL overrides the listing page address; empty means the public
	// default.
	SourceURL string `env:"FAKEUA_SOURCE_URL"`

	// LogLevel names the minimum log level: debug, info, warn or error.
	LogLevel string `env:"FAKEUA_LOG_LEVEL" envDefault:"info"`
}

var defaultEnvLoaded sync.Once

// LoadConfig populates a Config from the process environment, loading the
// default .env file first if one exists.
func LoadConfig() (Config, error) {
	defaultEnvLoaded.Do(func() {
		// The .env file might not exist and that's ok.
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrInvalidConfig, err)
	}
	return cfg, nil
}
