// internal/config/config.go
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	DBURL           string        `mapstructure:"DB_URL"`
	HTTPAddr        string        `mapstructure:"HTTP_ADDR"`
	AdminToken      string        `mapstructure:"ADMIN_TOKEN"`
	GithubToken     string        `mapstructure:"GITHUB_TOKEN"`
	GithubAPIURL    string        `mapstructure:"GITHUB_API_URL"`
	SyncHandles     []string      `mapstructure:"SYNC_HANDLES"`
	SyncInterval    time.Duration `mapstructure:"SYNC_INTERVAL"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
}

// LoadConfig reads configuration from file and/or environment variables.
func LoadConfig() (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("SYNC_INTERVAL", "0s")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	// Unset keys must be known to viper for AutomaticEnv to reach them during Unmarshal.
	for _, key := range []string{"DB_URL", "ADMIN_TOKEN", "GITHUB_TOKEN", "GITHUB_API_URL", "SYNC_HANDLES"} {
		v.SetDefault(key, "")
	}

	// Load from .env file if it exists
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // Ignore error if file not found

	// Bind environment variables
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.SyncHandles = normalizeHandles(cfg.SyncHandles)

	// Validate required fields
	if cfg.DBURL == "" {
		return nil, errors.New("DB_URL is a required configuration field")
	}
	if cfg.AdminToken == "" {
		return nil, errors.New("ADMIN_TOKEN is a required configuration field")
	}
	if cfg.SyncInterval < 0 {
		return nil, errors.New("SYNC_INTERVAL must not be negative")
	}
	if cfg.SyncInterval > 0 && len(cfg.SyncHandles) == 0 {
		return nil, errors.New("SYNC_HANDLES must contain at least one GitHub username when SYNC_INTERVAL is set")
	}

	return &cfg, nil
}

// normalizeHandles accepts both space and comma separated lists.
func normalizeHandles(raw []string) []string {
	var handles []string
	for _, r := range raw {
		for _, h := range strings.FieldsFunc(r, func(c rune) bool { return c == ',' || c == ' ' }) {
			handles = append(handles, h)
		}
	}
	return handles
}
