package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var errRedisRequired = errors.New("REDIS_ADDRESS is required")

type Config struct {
	App        App
	Log        Log
	HTTP       HTTP
	Rakuten    Rakuten
	Yahoo      Yahoo
	Amazon     Amazon
	Aggregator Aggregator
	Cache      Cache
	Redis      Redis
	Postgres   Postgres
	History    History
	Bot        Bot
	RateLimit  RateLimit
	Probe      Probe
	Metrics    Metrics
}

type App struct {
	Name    string `env:"APP_NAME" envDefault:"price-checker"`
	Version string `env:"APP_VERSION" envDefault:"dev"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	Format string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
}

type HTTP struct {
	ListenAddress   string        `env:"HTTP_LISTEN_ADDRESS" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	LogFieldMaxLen  int           `env:"HTTP_LOG_FIELD_MAX_LEN" envDefault:"4096" validate:"min=0"`

	// LogUpstreamBodies adds provider response bodies to the outgoing request logs.
	LogUpstreamBodies bool `env:"HTTP_LOG_UPSTREAM_BODIES" envDefault:"true"`
}

type RateLimit struct {
	RPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"5" validate:"min=0"`
	Burst int     `env:"RATE_LIMIT_BURST" envDefault:"10" validate:"min=0"`
}

// Enabled reports whether /api/search is limited at all.
func (r RateLimit) Enabled() bool {
	return r.RPS > 0 && r.Burst > 0
}

type Probe struct {
	ListenAddress string `env:"PROBE_LISTEN_ADDRESS" envDefault:":8081"`
}

type Metrics struct {
	ListenAddress string `env:"METRICS_LISTEN_ADDRESS" envDefault:":9090"`
}

type Bot struct {
	Token        string  `env:"BOT_TOKEN" json:"-"`
	AllowedChats []int64 `env:"BOT_ALLOWED_CHATS" envSeparator:","`
}

func (b Bot) Enabled() bool {
	return b.Token != ""
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("config.Validate: %w", err)
	}

	return config, nil
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("validator.Struct: %w", err)
	}

	if c.Cache.Backend == CacheBackendRedis && c.Redis.Address == "" {
		return fmt.Errorf("CACHE_BACKEND=redis: %w", errRedisRequired)
	}

	if c.History.Async && c.Redis.Address == "" {
		return fmt.Errorf("HISTORY_ASYNC: %w", errRedisRequired)
	}

	return nil
}
