package config_test

import (
	"path/filepath"
	"testing"

	"github.com/example/trolleypm/internal/config"
)

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DataDir != "" || cfg.DefaultTechnician != "" {
		t.Errorf("expected zero defaults, got %+v", cfg)
	}
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	err := config.Save(&config.Config{
		Version:           "1",
		DataDir:           "/var/lib/trolleypm",
		DefaultTechnician: "R. Patil",
	})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DataDir != "/var/lib/trolleypm" {
		t.Errorf("unexpected data dir %q", cfg.DataDir)
	}
	if cfg.DefaultTechnician != "R. Patil" {
		t.Errorf("unexpected technician %q", cfg.DefaultTechnician)
	}
}

func TestResolveDataDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := &config.Config{}
	dir, err := cfg.ResolveDataDir()
	if err != nil {
		t.Fatalf("ResolveDataDir failed: %v", err)
	}
	if dir != filepath.Join(home, ".trolleypm") {
		t.Errorf("unexpected default dir %q", dir)
	}

	cfg.DataDir = "/custom"
	dir, err = cfg.ResolveDataDir()
	if err != nil {
		t.Fatalf("ResolveDataDir failed: %v", err)
	}
	if dir != "/custom" {
		t.Errorf("expected override, got %q", dir)
	}
}
