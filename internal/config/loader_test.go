package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"

	"github.com/Hagni1/jurney/internal/config"
	"github.com/Hagni1/jurney/internal/errors"
)

func clearConfigEnvVars() {
	for _, kv := range os.Environ() {
		for i := 0; i < len(kv); i++ {
			if kv[i] == '=' {
				if key := kv[:i]; len(key) >= len(config.EnvPrefix) && key[:len(config.EnvPrefix)] == config.EnvPrefix {
					_ = os.Unsetenv(key)
				}
				break
			}
		}
	}
}

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "journey.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		clearConfigEnvVars()
		defer clearConfigEnvVars()

		convey.Convey("When loading with defaults only", func() {
			cfg, err := config.Load("")

			convey.Convey("Then the defaults are returned", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Server.Port, convey.ShouldEqual, 50051)
				convey.So(cfg.Server.MetricsAddr, convey.ShouldEqual, ":9090")
				convey.So(cfg.Server.ShutdownTimeout, convey.ShouldEqual, 30*time.Second)
				convey.So(cfg.Redis.Addr, convey.ShouldEqual, "localhost:6379")
				convey.So(cfg.Postgres.DSN, convey.ShouldBeEmpty)
				convey.So(cfg.Game.LockTTL, convey.ShouldEqual, 5*time.Second)
				convey.So(cfg.Game.RankingLimit, convey.ShouldEqual, 100)
				convey.So(cfg.Log.Level, convey.ShouldEqual, "info")
			})
		})

		convey.Convey("When loading a YAML file", func() {
			path := writeConfig(t, `
server:
  port: 6000
  shutdown_timeout: 5s
redis:
  addr: redis:6379
game:
  lock_ttl: 2s
log:
  format: json
`)
			cfg, err := config.Load(path)

			convey.Convey("Then file values override defaults and the rest are kept", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Server.Port, convey.ShouldEqual, 6000)
				convey.So(cfg.Server.ShutdownTimeout, convey.ShouldEqual, 5*time.Second)
				convey.So(cfg.Redis.Addr, convey.ShouldEqual, "redis:6379")
				convey.So(cfg.Redis.PoolSize, convey.ShouldEqual, 10)
				convey.So(cfg.Game.LockTTL, convey.ShouldEqual, 2*time.Second)
				convey.So(cfg.Log.Format, convey.ShouldEqual, "json")
				convey.So(cfg.Log.Level, convey.ShouldEqual, "info")
			})
		})

		convey.Convey("When env vars are set alongside a file", func() {
			path := writeConfig(t, "redis:\n  addr: redis:6379\n")
			_ = os.Setenv("JOURNEY_REDIS__ADDR", "cache:6380")
			_ = os.Setenv("JOURNEY_POSTGRES__DSN", "postgres://journey@db/journey")
			_ = os.Setenv("JOURNEY_GAME__RANKING_LIMIT", "25")

			cfg, err := config.Load(path)

			convey.Convey("Then env vars win", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Redis.Addr, convey.ShouldEqual, "cache:6380")
				convey.So(cfg.Postgres.DSN, convey.ShouldEqual, "postgres://journey@db/journey")
				convey.So(cfg.Game.RankingLimit, convey.ShouldEqual, 25)
			})
		})

		convey.Convey("When JOURNEY_CONFIG points at a file", func() {
			path := writeConfig(t, "server:\n  port: 7000\n")
			_ = os.Setenv(config.EnvConfigPath, path)

			cfg, err := config.Load("")

			convey.Convey("Then that file is used", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Server.Port, convey.ShouldEqual, 7000)
			})
		})

		convey.Convey("When the file does not exist", func() {
			_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))

			convey.Convey("Then loading fails", func() {
				convey.So(err, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When a value is invalid", func() {
			path := writeConfig(t, "log:\n  level: loud\ngame:\n  ranking_limit: 0\n")
			_, err := config.Load(path)

			convey.Convey("Then validation names the fields", func() {
				convey.So(errors.IsInvalidArgument(err), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "log.level")
				convey.So(err.Error(), convey.ShouldContainSubstring, "game.ranking_limit")
			})
		})
	})
}
