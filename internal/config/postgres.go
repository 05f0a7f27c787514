package config

import "time"

// Postgres is optional. An empty DSN turns the search history off.
type Postgres struct {
	DSN             string        `env:"PG_DSN" json:"-"`
	MaxIdleConns    int           `env:"PG_MAX_IDLE_CONNS" envDefault:"5"`
	MaxOpenConns    int           `env:"PG_MAX_OPEN_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"PG_CONN_MAX_LIFETIME" envDefault:"5m"`
}

type History struct {
	Async       bool `env:"HISTORY_ASYNC" envDefault:"false"`
	Concurrency int  `env:"HISTORY_WORKER_CONCURRENCY" envDefault:"2" validate:"min=1"`
}
