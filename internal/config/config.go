package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/firstrun/internal/logging"
	"github.com/spf13/viper"
)

// Store backends.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
)

// Config holds application configuration.
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Detector DetectorConfig `mapstructure:"detector"`
	Store    StoreConfig    `mapstructure:"store"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Server   ServerConfig   `mapstructure:"server"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// DetectorConfig holds the platform answers used when no platform detector is wired in.
type DetectorConfig struct {
	Supported bool `mapstructure:"supported"`
	IsDefault bool `mapstructure:"is_default"`
}

// StoreConfig selects and configures the install metadata store.
type StoreConfig struct {
	Backend string      `mapstructure:"backend"`
	Path    string      `mapstructure:"path"`
	Redis   RedisConfig `mapstructure:"redis"`
}

// RedisConfig holds redis connection settings.
type RedisConfig struct {
	Addr      string `mapstructure:"addr"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	Prefix    string `mapstructure:"prefix"`
	InstallID string `mapstructure:"install_id"`
}

// CatalogConfig points at an optional page catalog overriding the bundled one.
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// ServerConfig holds HTTP settings.
type ServerConfig struct {
	Port string `mapstructure:"port"`
}

// DefaultStorePath returns the per-user location of the install metadata file.
func DefaultStorePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".firstrun", "install.json")
	}
	return filepath.Join(dir, "firstrun", "install.json")
}

// Load reads configuration from file and env. Env var overrides use prefix FIRSTRUN_.
// If path is empty, FIRSTRUN_CONFIG is consulted, then ./firstrun.yaml and the user config dir.
func Load(path string) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("log.level", "info")
	v.SetDefault("detector.supported", true)
	v.SetDefault("detector.is_default", false)
	v.SetDefault("store.backend", BackendFile)
	v.SetDefault("store.path", DefaultStorePath())
	v.SetDefault("store.redis.addr", "localhost:6379")
	v.SetDefault("store.redis.password", "")
	v.SetDefault("store.redis.db", 0)
	v.SetDefault("store.redis.prefix", "firstrun:install:")
	v.SetDefault("store.redis.install_id", "default")
	v.SetDefault("catalog.path", "")
	v.SetDefault("server.port", "8080")

	v.SetConfigType("yaml")

	if path == "" {
		path = os.Getenv("FIRSTRUN_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("firstrun")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "firstrun"))
		}
	}

	v.SetEnvPrefix("FIRSTRUN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// An explicitly requested file must exist.
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects unknown backends and log levels.
func (c Config) Validate() error {
	switch c.Store.Backend {
	case BackendMemory, BackendFile, BackendRedis:
	default:
		return fmt.Errorf("unknown store backend %q (want memory, file or redis)", c.Store.Backend)
	}
	if c.Store.Backend == BackendFile && c.Store.Path == "" {
		return fmt.Errorf("store.path is required for the file backend")
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}
