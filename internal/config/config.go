// Package config loads application settings from a YAML file with
// environment overrides. Precedence, lowest to highest: built-in
// defaults, the settings file, CODETUTOR_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Settings is everything the app reads at startup.
type Settings struct {
	// User identifies the local learner profile.
	User string `yaml:"user"`

	// ContentDir is where tutorial documents live.
	ContentDir string `yaml:"content_dir"`

	// DBPath overrides the default database location when set.
	DBPath string `yaml:"db_path,omitempty"`

	// DefaultLanguage preselects a language for quiz and run commands.
	DefaultLanguage string `yaml:"default_language,omitempty"`

	// RunTimeoutSecs bounds code execution.
	RunTimeoutSecs int `yaml:"run_timeout_secs"`

	// Debug enables verbose logging.
	Debug bool `yaml:"debug"`

	// LogFile mirrors logs to a file when set.
	LogFile string `yaml:"log_file,omitempty"`
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		User:           "default",
		ContentDir:     "content",
		RunTimeoutSecs: 10,
	}
}

// RunTimeout returns the execution deadline as a duration.
func (s Settings) RunTimeout() time.Duration {
	return time.Duration(s.RunTimeoutSecs) * time.Second
}

// DefaultPath returns the settings file location: CODETUTOR_CONFIG,
// then $XDG_CONFIG_HOME/codetutor/settings.yaml, then
// ~/.config/codetutor/settings.yaml.
func DefaultPath() (string, error) {
	if p := os.Getenv("CODETUTOR_CONFIG"); p != "" {
		return p, nil
	}
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "codetutor", "settings.yaml"), nil
}

// Load reads settings from path. A missing file is not an error; the
// defaults apply. A .env file in the working directory is honored
// before environment overrides are read.
func Load(path string) (Settings, error) {
	// Missing .env is the normal case.
	_ = godotenv.Load()

	s := Defaults()

	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(raw, &s); err != nil {
			return s, fmt.Errorf("parse settings %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// Keep defaults.
	default:
		return s, fmt.Errorf("read settings %s: %w", path, err)
	}

	applyEnv(&s)
	return s, nil
}

// Save writes the settings to path, creating parent directories.
func Save(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	raw, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write settings %s: %w", path, err)
	}
	return nil
}

// Reset overwrites the settings file with the defaults and returns
// them.
func Reset(path string) (Settings, error) {
	s := Defaults()
	if err := Save(path, s); err != nil {
		return s, err
	}
	return s, nil
}

func applyEnv(s *Settings) {
	if v := os.Getenv("CODETUTOR_USER"); v != "" {
		s.User = v
	}
	if v := os.Getenv("CODETUTOR_CONTENT_DIR"); v != "" {
		s.ContentDir = v
	}
	if v := os.Getenv("CODETUTOR_DB"); v != "" {
		s.DBPath = v
	}
	if v := os.Getenv("CODETUTOR_LANGUAGE"); v != "" {
		s.DefaultLanguage = v
	}
	if v := os.Getenv("CODETUTOR_RUN_TIMEOUT_SECS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			s.RunTimeoutSecs = n
		}
	}
	if v := os.Getenv("CODETUTOR_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			s.Debug = b
		}
	}
	if v := os.Getenv("CODETUTOR_LOG_FILE"); v != "" {
		s.LogFile = v
	}
}
