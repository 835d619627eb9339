package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr string     `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	SPADir   string     `env:"SPA_DIR" envDefault:"../web/dist"`

	// OriginURL is the upstream SPA fronted by the offline cache. When empty
	// the SPA is served from SPADir.
	OriginURL    *url.URL `env:"ORIGIN_URL"`
	CacheDBPath  string   `env:"CACHE_DB_PATH" envDefault:"data/offline-cache.db"`
	CacheVersion string   `env:"CACHE_VERSION" envDefault:"v1"`
	Development  bool     `env:"DEVELOPMENT" envDefault:"false"`

	HighscoreAPIURL string        `env:"HIGHSCORE_API_URL" envDefault:"https://forja-api.onrender.com/marcopolo"`
	HighscoreAPIKey string        `env:"HIGHSCORE_API_KEY"`
	RedisURL        string        `env:"REDIS_URL"`
	LeaderboardTTL  time.Duration `env:"LEADERBOARD_TTL" envDefault:"30s"`

	FlagCDNURL     string        `env:"FLAG_CDN_URL" envDefault:"https://flagcdn.com"`
	RoundDelay     time.Duration `env:"ROUND_DELAY" envDefault:"1.5s"`
	SessionIdleTTL time.Duration `env:"SESSION_IDLE_TTL" envDefault:"2h"`
}

// Load reads the environment, after merging a .env file from the working
// directory if one exists. Variables already set win over the file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if cfg.RoundDelay <= 0 {
		return nil, fmt.Errorf("ROUND_DELAY must be positive, got %s", cfg.RoundDelay)
	}
	return &cfg, nil
}
