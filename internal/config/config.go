package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config represents the user's configuration
type Config struct {
	SplashSeconds int    `json:"splash_seconds"`
	SkipSplash    bool   `json:"skip_splash"`
	ToastSeconds  int    `json:"toast_seconds"`
	Debug         bool   `json:"debug"`
	LogLevel      string `json:"log_level"`
	LogDir        string `json:"log_dir,omitempty"` // Empty means ~/.dialastocktaker/logs
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		SplashSeconds: 30,
		ToastSeconds:  5,
		LogLevel:      "info",
	}
}

// GlobalDir returns the global config directory path (~/.dialastocktaker)
func GlobalDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".dialastocktaker"), nil
}

// globalConfigPath returns the global config file path (~/.dialastocktaker/config.json)
func globalConfigPath() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// projectConfigPath returns the project-level config path (.dialastocktaker/config.json in cwd)
func projectConfigPath() string {
	return filepath.Join(".dialastocktaker", "config.json")
}

// Load reads the config, checking project config first, then global, then
// falling back to defaults. Environment overrides are applied last.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	// A project file replaces the global one; only a missing file falls through
	projectPath := projectConfigPath()
	data, err := os.ReadFile(projectPath)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", projectPath, err)
		}
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("read %s: %w", projectPath, err)
	default:
		globalPath, err := globalConfigPath()
		if err != nil {
			return nil, err
		}
		data, err := os.ReadFile(globalPath)
		switch {
		case err == nil:
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", globalPath, err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("read %s: %w", globalPath, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.SplashSeconds = envInt("DAS_SPLASH_SECONDS", c.SplashSeconds)
	c.SkipSplash = envBool("DAS_SKIP_SPLASH", c.SkipSplash)
	c.ToastSeconds = envInt("DAS_TOAST_SECONDS", c.ToastSeconds)
	c.Debug = envBool("DAS_DEBUG", c.Debug)
	c.LogLevel = envStr("DAS_LOG_LEVEL", c.LogLevel)
	c.LogDir = envStr("DAS_LOG_DIR", c.LogDir)
}

func (c *Config) validate() error {
	if c.SplashSeconds < 1 {
		return fmt.Errorf("splash_seconds must be at least 1, got %d", c.SplashSeconds)
	}
	if c.ToastSeconds < 1 {
		return fmt.Errorf("toast_seconds must be at least 1, got %d", c.ToastSeconds)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error; got %q", c.LogLevel)
	}
	return nil
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}
