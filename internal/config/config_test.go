package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// isolate points HOME at a temp dir and chdirs into another so neither the
// developer's global nor project config leaks into a test.
func isolate(t *testing.T) (home, project string) {
	t.Helper()
	home = t.TempDir()
	project = t.TempDir()
	t.Setenv("HOME", home)
	for _, k := range []string{
		"DAS_SPLASH_SECONDS", "DAS_SKIP_SPLASH", "DAS_TOAST_SECONDS",
		"DAS_DEBUG", "DAS_LOG_LEVEL", "DAS_LOG_DIR",
	} {
		t.Setenv(k, "")
	}

	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(project); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(originalWd) })
	return home, project
}

func writeConfig(t *testing.T, dir, body string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(body), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	want := DefaultConfig()
	if *cfg != *want {
		t.Errorf("Load() = %+v, want %+v", cfg, want)
	}
}

func TestLoadGlobalConfig(t *testing.T) {
	home, _ := isolate(t)
	writeConfig(t, filepath.Join(home, ".dialastocktaker"), `{"splash_seconds": 3, "debug": true}`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.SplashSeconds != 3 || !cfg.Debug {
		t.Errorf("global config not applied: %+v", cfg)
	}
	// Unset fields keep defaults
	if cfg.ToastSeconds != 5 || cfg.LogLevel != "info" {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadProjectConfigWins(t *testing.T) {
	home, project := isolate(t)
	writeConfig(t, filepath.Join(home, ".dialastocktaker"), `{"splash_seconds": 3}`)
	writeConfig(t, filepath.Join(project, ".dialastocktaker"), `{"splash_seconds": 7, "skip_splash": true}`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.SplashSeconds != 7 || !cfg.SkipSplash {
		t.Errorf("project config should win: %+v", cfg)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("DAS_SPLASH_SECONDS", "2")
	t.Setenv("DAS_SKIP_SPLASH", "true")
	t.Setenv("DAS_TOAST_SECONDS", "9")
	t.Setenv("DAS_DEBUG", "1")
	t.Setenv("DAS_LOG_LEVEL", "debug")
	t.Setenv("DAS_LOG_DIR", "/tmp/das-logs")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	want := Config{
		SplashSeconds: 2,
		SkipSplash:    true,
		ToastSeconds:  9,
		Debug:         true,
		LogLevel:      "debug",
		LogDir:        "/tmp/das-logs",
	}
	if *cfg != want {
		t.Errorf("Load() = %+v, want %+v", *cfg, want)
	}
}

func TestLoadInvalidEnvIgnored(t *testing.T) {
	isolate(t)
	t.Setenv("DAS_SPLASH_SECONDS", "soon")
	t.Setenv("DAS_DEBUG", "maybe")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.SplashSeconds != 30 || cfg.Debug {
		t.Errorf("unparseable env should fall back: %+v", cfg)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	home, _ := isolate(t)
	writeConfig(t, filepath.Join(home, ".dialastocktaker"), `{"splash_seconds": `)

	if _, err := Load(); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadUnreadableProjectConfig(t *testing.T) {
	home, project := isolate(t)
	writeConfig(t, filepath.Join(home, ".dialastocktaker"), `{"splash_seconds": 7}`)
	// A directory where the file should be cannot be read
	if err := os.MkdirAll(filepath.Join(project, ".dialastocktaker", "config.json"), 0755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	cfg, err := Load()
	if err == nil {
		t.Fatalf("expected a read error, got config %+v", cfg)
	}
	if !strings.Contains(err.Error(), "config.json") {
		t.Errorf("error should name the file: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults ok", func(*Config) {}, ""},
		{"zero splash", func(c *Config) { c.SplashSeconds = 0 }, "splash_seconds"},
		{"negative toast", func(c *Config) { c.ToastSeconds = -1 }, "toast_seconds"},
		{"bad level", func(c *Config) { c.LogLevel = "verbose" }, "log_level"},
		{"upper level ok", func(c *Config) { c.LogLevel = "WARN" }, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadValidationError(t *testing.T) {
	isolate(t)
	t.Setenv("DAS_TOAST_SECONDS", "0")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "config validation") {
		t.Errorf("Load() = %v, want validation error", err)
	}
}
