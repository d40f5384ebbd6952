package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	// APIBaseURL is the base address of the Trendora admin API. Every
	// network operation fails fast when it is absent.
	APIBaseURL string        `env:"TRENDORA_API_URL"`
	Env        string        `env:"ENV,              default=development"`
	LogLevel   string        `env:"LOG_LEVEL,        default=info"`
	Timeout    time.Duration `env:"HTTP_TIMEOUT,     default=30s"`

	Credentials CredentialConfig
	Redis       RedisConfig
}

// CredentialConfig selects where the bearer token is persisted between runs.
type CredentialConfig struct {
	// Backend is "file", "redis" or "none".
	Backend string `env:"TOKEN_STORE,      default=file"`
	// File is the token file path. Defaults to ~/.trendora/token.
	File string `env:"TOKEN_FILE"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.Credentials.File == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			cfg.Credentials.File = filepath.Join(home, ".trendora", "token")
		}
	}
	return &cfg, nil
}
