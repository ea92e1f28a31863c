package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the service settings.
type Config struct {
	// DBPath is the SQLite database file. When empty the database is placed
	// in the root of the enclosing git checkout.
	DBPath          string        `yaml:"db" toml:"db" json:"db" env:"KATALOG_DB"`
	Addr            string        `yaml:"addr" toml:"addr" json:"addr" env:"KATALOG_ADDR" env-default:":8080"`
	LogPath         string        `yaml:"log" toml:"log" json:"log" env:"KATALOG_LOG"`
	LogLevel        string        `yaml:"log_level" toml:"log_level" json:"log_level" env:"KATALOG_LOG_LEVEL" env-default:"info"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" toml:"shutdown_timeout" json:"shutdown_timeout" env:"KATALOG_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

// Load reads the configuration from path, or from the environment alone when
// path is empty. Environment variables override file values.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	if _, err := cfg.Level(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", c.LogLevel)
	}
}
