// Package config defines the journey server configuration and how it is loaded.
package config

import (
	"time"

	"github.com/Hagni1/jurney/internal/errors"
)

// Config contains process configuration
type Config struct {
	Server   Server   `koanf:"server"`
	Redis    Redis    `koanf:"redis"`
	Postgres Postgres `koanf:"postgres"`
	Game     Game     `koanf:"game"`
	Log      Log      `koanf:"log"`
}

// Server configures the listeners
type Server struct {
	// Port is the gRPC listen port
	Port int `koanf:"port"`
	// MetricsAddr serves /metrics, empty disables it
	MetricsAddr     string        `koanf:"metrics_addr"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Redis configures the primary store
type Redis struct {
	Addr     string `koanf:"addr"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
	PoolSize int    `koanf:"pool_size"`
}

// Postgres configures the combat archive. An empty DSN keeps the archive in memory.
type Postgres struct {
	DSN            string `koanf:"dsn"`
	MigrateOnStart bool   `koanf:"migrate_on_start"`
	MaxConns       int32  `koanf:"max_conns"`
}

// Game holds gameplay tunables
type Game struct {
	// CatalogPath overrides the built-in stage catalog
	CatalogPath string `koanf:"catalog_path"`
	// LockTTL bounds how long a fight or claim may hold a character
	LockTTL      time.Duration `koanf:"lock_ttl"`
	RankingLimit int           `koanf:"ranking_limit"`
}

// Log configures slog
type Log struct {
	// Level is debug, info, warn or error
	Level string `koanf:"level"`
	// Format is text or json
	Format string `koanf:"format"`
}

// New returns a Config holding the defaults
func New() *Config {
	return &Config{
		Server: Server{
			Port:            50051,
			MetricsAddr:     ":9090",
			ShutdownTimeout: 30 * time.Second,
		},
		Redis: Redis{
			Addr:     "localhost:6379",
			PoolSize: 10,
		},
		Postgres: Postgres{
			MigrateOnStart: true,
		},
		Game: Game{
			LockTTL:      5 * time.Second,
			RankingLimit: 100,
		},
		Log: Log{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate checks the loaded values are usable
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("server.port", c.Server.Port, 1, 65535, vb)
	if c.Server.ShutdownTimeout <= 0 {
		vb.Field("server.shutdown_timeout", "must be positive")
	}
	errors.ValidateRequired("redis.addr", c.Redis.Addr, vb)
	if c.Game.LockTTL <= 0 {
		vb.Field("game.lock_ttl", "must be positive")
	}
	errors.ValidateMin("game.ranking_limit", c.Game.RankingLimit, 1, vb)

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		vb.InvalidField("log.level", "must be debug, info, warn or error")
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		vb.InvalidField("log.format", "must be text or json")
	}

	return vb.Build()
}
