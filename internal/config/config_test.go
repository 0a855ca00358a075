package config

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Character != "endora" {
		t.Errorf("Character = %q, want %q", cfg.Character, "endora")
	}
	if cfg.Intensity != 5 {
		t.Errorf("Intensity = %d, want 5", cfg.Intensity)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if Exists() {
		t.Fatal("Exists() = true before any save")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded != nil {
		t.Fatal("Load() != nil before any save")
	}

	cfg := &Config{Character: "endora", Intensity: 8, OlogDir: "/tmp/ologs"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if !Exists() {
		t.Error("Exists() = false after save")
	}

	loaded, err = Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded == nil {
		t.Fatal("Load() = nil after save")
	}
	if *loaded != *cfg {
		t.Errorf("Load() = %+v, want %+v", loaded, cfg)
	}
}
