package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Population != 10 {
		t.Errorf("expected population 10, got %d", cfg.Population)
	}
	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		t.Error("arena extents should be positive")
	}
	if err := cfg.EngineParams().Validate(); err != nil {
		t.Errorf("default config should map to valid engine params: %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("electrons")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Population != 10 {
		t.Errorf("expected 10 particles, got %d", cfg.Population)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) == 0 {
		t.Error("expected at least one preset")
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Population = 25
	cfg.Seed = 99

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Population != 25 {
		t.Errorf("expected population 25, got %d", loaded.Population)
	}
	if loaded.Seed != 99 {
		t.Errorf("expected seed 99, got %d", loaded.Seed)
	}
	if loaded.Dt != cfg.Dt {
		t.Errorf("expected dt %g, got %g", cfg.Dt, loaded.Dt)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
