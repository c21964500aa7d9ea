// Package config resolves application settings, most importantly where
// the database file lives. Sources are layered: built-in defaults, then
// an optional YAML config file, then THERAPY_LOG_* environment variables,
// then explicitly-set command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const (
	appDirName     = ".therapy-log"
	configFileName = "config.yaml"
	dbFileName     = "therapy-log.db"
	envPrefix      = "THERAPY_LOG_"
)

// Config holds the resolved settings.
type Config struct {
	DatabasePath string `koanf:"database_path"`
}

// appDir returns the per-user application directory (~/.therapy-log).
func appDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, appDirName), nil
}

// Load resolves the configuration. flags may be nil when no command-line
// surface is involved (tests); only flags the user actually changed
// override the other sources.
func Load(flags *pflag.FlagSet) (*Config, error) {
	dir, err := appDir()
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"database_path": filepath.Join(dir, dbFileName),
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	configPath := filepath.Join(dir, configFileName)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configPath, err)
		}
	}

	// THERAPY_LOG_DATABASE_PATH -> database_path
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			// --database-path -> database_path
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &cfg, nil
}
