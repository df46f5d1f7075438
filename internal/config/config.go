package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the process configuration, read from the environment (an optional
// .env file is loaded first).
type Config struct {
	Port                 string        `env:"PORT" envDefault:"5000"`
	LogLevel             string        `env:"LOG_LEVEL" envDefault:"info"`
	SessionTTL           time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	SessionPurgeInterval time.Duration `env:"SESSION_PURGE_INTERVAL" envDefault:"1h"`
	ChatReplyDelay       time.Duration `env:"CHAT_REPLY_DELAY" envDefault:"1s"`
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
