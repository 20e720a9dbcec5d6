package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("VHUB_AUTH_JWT_SECRET", "test-secret-at-least-16-chars")

	cfg, err := loadFromDir(t)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Timezone != "America/Sao_Paulo" {
		t.Errorf("Database.Timezone = %q, want America/Sao_Paulo", cfg.Database.Timezone)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
}

// loadFromDir runs Load from an empty working directory so no stray
// config.yaml on the developer machine leaks into the test.
func loadFromDir(t *testing.T) (*Config, error) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return Load("")
}

func TestLoadFromFile(t *testing.T) {
	t.Setenv("VHUB_AUTH_JWT_SECRET", "test-secret-at-least-16-chars")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("server:\n  port: 9090\nlog:\n  level: debug\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Server: ServerConfig{Port: 8080},
			Auth:   AuthConfig{JWTSecret: "test-secret-at-least-16-chars"},
		}
	}

	t.Run("valid", func(t *testing.T) {
		if err := base().Validate(); err != nil {
			t.Errorf("Validate() error = %v", err)
		}
	})

	t.Run("empty secret", func(t *testing.T) {
		cfg := base()
		cfg.Auth.JWTSecret = ""
		if err := cfg.Validate(); err == nil {
			t.Error("Validate() should reject empty jwt secret")
		}
	})

	t.Run("short secret", func(t *testing.T) {
		cfg := base()
		cfg.Auth.JWTSecret = "short"
		if err := cfg.Validate(); err == nil {
			t.Error("Validate() should reject short jwt secret")
		}
	})

	t.Run("bad port", func(t *testing.T) {
		cfg := base()
		cfg.Server.Port = 0
		if err := cfg.Validate(); err == nil {
			t.Error("Validate() should reject port 0")
		}
	})
}
