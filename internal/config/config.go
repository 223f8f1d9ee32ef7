// Package config provides configuration loading for mcp-booster.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// envPrefix namespaces this server's environment variables.
const envPrefix = "BOOSTER_"

// Config is the full server configuration.
type Config struct {
	Log   LogConfig   `koanf:"log"`
	Store StoreConfig `koanf:"store"`
}

// LogConfig controls the process logger.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// StoreConfig controls the conclusion store.
type StoreConfig struct {
	DataDir          string `koanf:"data_dir"`
	DefaultCategory  string `koanf:"default_category"`
	MaxSearchResults int    `koanf:"max_search_results"`
}

// Default returns the configuration used when no file and no environment
// overrides are present.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Store: StoreConfig{
			DataDir:          "booster-data",
			DefaultCategory:  "feature",
			MaxSearchResults: 20,
		},
	}
}

// DefaultPath returns the default config file location,
// ~/.config/mcp-booster/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "mcp-booster", "config.yaml"), nil
}

// Load reads configuration with the usual precedence, highest first:
//
//  1. Environment variables (BOOSTER_LOG_LEVEL, BOOSTER_STORE_DATA_DIR, ...)
//  2. YAML config file (configPath, or the default path when empty)
//  3. Hardcoded defaults
//
// A missing config file is not an error — defaults plus environment apply.
func Load(configPath string) (Config, error) {
	k := koanf.New(".")

	if configPath == "" {
		var err error
		configPath, err = DefaultPath()
		if err != nil {
			return Config{}, err
		}
	}

	if content, err := os.ReadFile(configPath); err == nil {
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", configPath, err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("config: read %s: %w", configPath, err)
	}

	// BOOSTER_LOG_LEVEL -> log.level, BOOSTER_STORE_DATA_DIR -> store.data_dir.
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		lower := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		parts := strings.SplitN(lower, "_", 2)
		if len(parts) == 1 {
			return lower
		}
		return parts[0] + "." + parts[1]
	}), nil); err != nil {
		return Config{}, fmt.Errorf("config: load environment: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the server cannot run with.
func (c Config) Validate() error {
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("config: log.format must be console or json, got %q", c.Log.Format)
	}
	if c.Store.DataDir == "" {
		return fmt.Errorf("config: store.data_dir must not be empty")
	}
	if strings.Contains(c.Store.DataDir, string(os.PathSeparator)) {
		return fmt.Errorf("config: store.data_dir must be a single directory name, got %q", c.Store.DataDir)
	}
	if c.Store.MaxSearchResults < 0 {
		return fmt.Errorf("config: store.max_search_results must not be negative")
	}
	return nil
}
