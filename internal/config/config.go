package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultLength = 16
	maxLength     = 256

	historyFileName = ".passgen_history"
)

// Config holds passgen settings.
type Config struct {
	Env           string `mapstructure:"env"`
	DefaultLength int    `mapstructure:"default_length"`
	NoCopy        bool   `mapstructure:"no_copy"`
	Animate       bool   `mapstructure:"animate"`
	LogLevel      string `mapstructure:"log_level"`
	HistoryFile   string `mapstructure:"history_file"`
}

// Load reads configuration from a .env file, an optional TOML config file and
// the environment. Env var overrides use prefix PASSGEN_.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	v := viper.New()

	v.SetDefault("env", "development")
	v.SetDefault("default_length", defaultLength)
	v.SetDefault("no_copy", false)
	v.SetDefault("animate", true)
	v.SetDefault("log_level", "warn")
	if home, err := os.UserHomeDir(); err == nil {
		v.SetDefault("history_file", filepath.Join(home, historyFileName))
	}

	v.SetConfigType("toml")
	if path := os.Getenv("PASSGEN_CONFIG"); path != "" {
		v.SetConfigFile(path)
	} else if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "passgen"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("PASSGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.DefaultLength < 1 || cfg.DefaultLength > maxLength {
		return Config{}, fmt.Errorf("default_length must be between 1-%d, got %d", maxLength, cfg.DefaultLength)
	}

	return cfg, nil
}

// SlogLevel maps LogLevel to a slog.Level, falling back to warn.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn
	}
	return level
}
