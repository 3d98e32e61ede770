package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Backdrop != BackdropStars {
		t.Errorf("expected backdrop stars, got %s", cfg.Backdrop)
	}
	if cfg.Stars.Min != 80 || cfg.Stars.Max != 300 {
		t.Errorf("expected star bounds [80, 300], got [%d, %d]", cfg.Stars.Min, cfg.Stars.Max)
	}
	if cfg.Network.Count != 50 {
		t.Errorf("expected 50 network particles, got %d", cfg.Network.Count)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Stars.Density != StarDensity {
		t.Errorf("expected default density, got %v", cfg.Stars.Density)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.yaml")
	data := "backdrop: network\nseed: 42\nnetwork:\n  count: 120\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Backdrop != BackdropNetwork {
		t.Errorf("expected network, got %s", cfg.Backdrop)
	}
	if cfg.Seed != 42 {
		t.Errorf("expected seed 42, got %d", cfg.Seed)
	}
	if cfg.Network.Count != 120 {
		t.Errorf("expected count 120, got %d", cfg.Network.Count)
	}
	// untouched sections keep their defaults
	if cfg.Stars.Max != StarMaxCount {
		t.Errorf("expected default star max, got %d", cfg.Stars.Max)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}

func TestApplyEnv(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(envFile, []byte("FOLIO_SEED=7\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FOLIO_BACKDROP", " Network ")
	t.Setenv("FOLIO_SOUND", "true")
	t.Cleanup(func() { os.Unsetenv("FOLIO_SEED") })

	cfg := Default()
	if err := cfg.ApplyEnv(envFile, filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Backdrop != BackdropNetwork {
		t.Errorf("expected network, got %q", cfg.Backdrop)
	}
	if cfg.Seed != 7 {
		t.Errorf("expected seed 7 from .env, got %d", cfg.Seed)
	}
	if !cfg.Sound {
		t.Error("expected sound enabled")
	}
}

func TestApplyEnv_BadSeed(t *testing.T) {
	t.Setenv("FOLIO_SEED", "abc")
	if err := Default().ApplyEnv(); err == nil {
		t.Error("expected error for malformed seed")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"default", func(*Config) {}, true},
		{"unknown backdrop", func(c *Config) { c.Backdrop = "snow" }, false},
		{"zero density", func(c *Config) { c.Stars.Density = 0 }, false},
		{"min above max", func(c *Config) { c.Stars.Min = 400 }, false},
		{"no particles", func(c *Config) { c.Network.Count = 0 }, false},
		{"bad window", func(c *Config) { c.Window.Width = -1 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tt.ok && err == nil {
				t.Error("expected error")
			}
		})
	}

	cfg := Default()
	cfg.Backdrop = "snow"
	if err := cfg.Validate(); !errors.Is(err, ErrUnknownBackdrop) {
		t.Errorf("expected ErrUnknownBackdrop, got %v", err)
	}
}
