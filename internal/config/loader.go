package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/Hagni1/jurney/internal/errors"
)

const (
	// EnvPrefix prefixes every environment override
	EnvPrefix = "JOURNEY_"
	// EnvConfigPath names a YAML file when no path is passed to Load
	EnvConfigPath = EnvPrefix + "CONFIG"
)

// Load builds a Config by layering, from lowest to highest precedence:
//  1. defaults (New)
//  2. the YAML file at path, or at $JOURNEY_CONFIG when path is empty
//  3. env vars, where a double underscore separates sections:
//     JOURNEY_REDIS__ADDR sets redis.addr
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "failed to load config file %s", path)
		}
	}

	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, EnvPrefix)
		s = strings.ToLower(s)
		return strings.ReplaceAll(s, "__", ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, errors.Wrap(err, "failed to load environment")
	}

	cfg := New()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
