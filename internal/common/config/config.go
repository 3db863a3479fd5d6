package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	// AuthDisabled bypasses the identity provider entirely and seeds a
	// synthetic super_admin session. Development mode only.
	AuthDisabled bool `env:"AUTH_DISABLED" envDefault:"false"`

	Server struct {
		Port   int    `env:"PORT" envDefault:"8080"`
		Origin string `env:"ORIGIN" envDefault:"http://localhost:3000"`
	}

	Redis struct {
		Host     string `env:"REDIS_HOST" envDefault:"localhost"`
		Port     int    `env:"REDIS_PORT" envDefault:"6379"`
		Password string `env:"REDIS_PASSWORD" envDefault:""`
		DB       int    `env:"REDIS_DB" envDefault:"0"`
	}

	Auth struct {
		JWTSecret       string        `env:"JWT_SECRET"`
		TokenTTL        time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
		ProfileCacheTTL time.Duration `env:"PROFILE_CACHE_TTL" envDefault:"5m"`
	}
}

func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

func Load() (*Config, error) {
	// Ignore a missing .env file; in production the variables are set
	// directly in the environment.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if !cfg.AuthDisabled && cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required unless AUTH_DISABLED=true")
	}

	return cfg, nil
}
