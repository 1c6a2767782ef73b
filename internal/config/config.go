package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config aggregates every tunable the web client reads from the
// environment. Values are parsed once in main and passed down explicitly.
type Config struct {
	Server  ServerConfig
	REST    RESTConfig
	Redis   RedisConfig
	Session SessionConfig
	Logging LoggingConfig
}

type ServerConfig struct {
	Port string `env:"PORT" envDefault:"8080"`
}

// RESTConfig selects the booking backend origin. The default matches the
// backend's local development setup.
type RESTConfig struct {
	BaseURL string        `env:"API_BASE_URL" envDefault:"http://localhost:3000/api"`
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"10s"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type SessionConfig struct {
	CookieName string        `env:"SESSION_COOKIE" envDefault:"cachette_session"`
	TTL        time.Duration `env:"SESSION_TTL" envDefault:"72h"`
	Secure     bool          `env:"SESSION_COOKIE_SECURE" envDefault:"false"`
}

type LoggingConfig struct {
	Level     string `env:"LOG_LEVEL" envDefault:"info"`
	Format    string `env:"LOG_FORMAT" envDefault:"text"`
	Directory string `env:"LOG_DIR" envDefault:"./logs"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
