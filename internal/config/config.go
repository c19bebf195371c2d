// Package config resolves runtime configuration from the environment.
package config

import (
	"os"
	"path/filepath"

	"github.com/mperko/cjenik/internal/model"
)

// Config is everything the app reads from its environment.
type Config struct {
	APIBaseURL string
	DBPath     string
	Passphrase string
	LogLevel   string

	// Fallback display settings, in effect whenever no profile is
	// adopted and restored after logout.
	Fallback model.DisplaySettings
}

// Load reads configuration from CJENIK_* environment variables, applying
// defaults for anything unset.
func Load() Config {
	cfg := Config{
		APIBaseURL: os.Getenv("CJENIK_API_URL"),
		DBPath:     os.Getenv("CJENIK_DB_PATH"),
		Passphrase: os.Getenv("CJENIK_PASSPHRASE"),
		LogLevel:   os.Getenv("CJENIK_LOG_LEVEL"),
		Fallback: model.DisplaySettings{
			Language: model.LanguageEN,
			Currency: "$",
			Theme:    model.ThemeLight,
		},
	}

	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = "https://cjenik.app/api"
	}
	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath()
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	return cfg
}

func defaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "cjenik.db"
	}
	return filepath.Join(dir, "cjenik", "cjenik.db")
}
