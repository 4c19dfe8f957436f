// Package config loads and exposes application configuration (TOML).
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Default configuration values used when a field is missing in TOML.
const (
	DefaultConfigPath  = "config.toml"
	DefaultHTTPAddr    = ":8080"
	DefaultMeiliURL    = "http://127.0.0.1:7700"
	DefaultRedirectURL = "http://localhost:5173/login/twitch/callback"
)

// Config is the root application configuration loaded from TOML, with
// secrets overridable from the environment.
type Config struct {
	Log      LogConfig      `toml:"log"`
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Twitch   TwitchConfig   `toml:"twitch"`
	Meili    MeiliConfig    `toml:"meilisearch"`
}

// LogConfig holds logging level and format (e.g. level=info, format=json).
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// ServerConfig holds the HTTP server listen address.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// DatabaseConfig holds the PostgreSQL connection string.
type DatabaseConfig struct {
	URL string `toml:"url"`
}

// TwitchConfig holds the OAuth client used for login.
type TwitchConfig struct {
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
	RedirectURL  string `toml:"redirect_url"`
}

// MeiliConfig holds the search index connection.
type MeiliConfig struct {
	URL string `toml:"url"`
	Key string `toml:"key"`
}

// Load reads the TOML file at path (missing file is fine, defaults apply),
// then applies environment overrides for the connection strings and secrets:
// DATABASE_URL, TWITCH_CLIENT_ID, TWITCH_CLIENT_SECRET, MEILISEARCH_URL,
// MEILISEARCH_KEY.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Log:    LogConfig{Level: "info", Format: "text"},
		Server: ServerConfig{Addr: DefaultHTTPAddr},
		Twitch: TwitchConfig{RedirectURL: DefaultRedirectURL},
		Meili:  MeiliConfig{URL: DefaultMeiliURL},
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	overrideEnv(&cfg.Database.URL, "DATABASE_URL")
	overrideEnv(&cfg.Twitch.ClientID, "TWITCH_CLIENT_ID")
	overrideEnv(&cfg.Twitch.ClientSecret, "TWITCH_CLIENT_SECRET")
	overrideEnv(&cfg.Meili.URL, "MEILISEARCH_URL")
	overrideEnv(&cfg.Meili.Key, "MEILISEARCH_KEY")

	if cfg.Database.URL == "" {
		return nil, errors.New("database url is required (set DATABASE_URL or [database] url)")
	}
	return cfg, nil
}

func overrideEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
