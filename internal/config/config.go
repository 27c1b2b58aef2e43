// Package config loads the tally configuration from disk and the
// environment. Environment variables override file values.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// DefaultDailyCap is the maximum hours per owner per day when no other
// cap is configured.
const DefaultDailyCap = 8.0

// Config represents the flat tally configuration.
type Config struct {
	DBPath        string  `json:"db_path,omitempty"`
	HTTPAddr      string  `json:"http_addr,omitempty"`
	JWTSecret     string  `json:"jwt_secret,omitempty"`
	DailyCapHours float64 `json:"daily_cap_hours,omitempty"`
}

// LoadConfig reads config.json from ~/.tally, applies defaults and
// environment overrides. A missing file is not an error; the defaults
// apply.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		HTTPAddr:      ":8080",
		DailyCapHours: DefaultDailyCap,
	}

	path, err := configPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	applyEnv(cfg)

	if cfg.DailyCapHours <= 0 {
		cfg.DailyCapHours = DefaultDailyCap
	}

	return cfg, nil
}

// SaveConfig writes config.json to ~/.tally.
func SaveConfig(cfg *Config) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".tally", "config.json"), nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("TALLY_DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("TALLY_HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	if v := os.Getenv("TALLY_JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := os.Getenv("TALLY_DAILY_CAP"); v != "" {
		if cap, err := strconv.ParseFloat(v, 64); err == nil && cap > 0 {
			cfg.DailyCapHours = cap
		}
	}
}
