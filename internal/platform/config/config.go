package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultCutoff bounds the calendar fetch window; events before it are
// covered by the static dataset and must not be fetched again.
const DefaultCutoff = "2026-01-01T00:00:00Z"

type CalendarConfig struct {
	Name         string `yaml:"name"`
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
}

type Config struct {
	HomePath    string
	DatasetPath string
	TokenPath   string
	Calendar    CalendarConfig
	Cutoff      time.Time
}

type fileConfig struct {
	Calendar    CalendarConfig `yaml:"calendar"`
	DatasetPath string         `yaml:"dataset_path"`
	TokenPath   string         `yaml:"token_path"`
	Cutoff      string         `yaml:"cutoff"`
}

// New resolves configuration from <home>/config.yaml, falling back to
// defaults when the file does not exist. An empty homePath resolves to
// ~/.tempo.
func New(homePath string) (Config, error) {
	if homePath == "" {
		userHome, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home dir: %w", err)
		}
		homePath = filepath.Join(userHome, ".tempo")
	}

	cfg := Config{
		HomePath:  homePath,
		TokenPath: filepath.Join(homePath, "token.json"),
		Calendar:  CalendarConfig{Name: "Practice"},
	}
	cfg.Cutoff, _ = time.Parse(time.RFC3339, DefaultCutoff)

	payload, err := os.ReadFile(filepath.Join(homePath, "config.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(payload, &fc); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if fc.Calendar.Name != "" {
		cfg.Calendar.Name = fc.Calendar.Name
	}
	cfg.Calendar.ClientID = fc.Calendar.ClientID
	cfg.Calendar.ClientSecret = fc.Calendar.ClientSecret
	if fc.DatasetPath != "" {
		cfg.DatasetPath = absAgainst(homePath, fc.DatasetPath)
	}
	if fc.TokenPath != "" {
		cfg.TokenPath = absAgainst(homePath, fc.TokenPath)
	}
	if fc.Cutoff != "" {
		cutoff, err := time.Parse(time.RFC3339, fc.Cutoff)
		if err != nil {
			return Config{}, fmt.Errorf("parse cutoff %q: %w", fc.Cutoff, err)
		}
		cfg.Cutoff = cutoff
	}
	return cfg, nil
}

func absAgainst(base, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Clean(filepath.Join(base, path))
}
