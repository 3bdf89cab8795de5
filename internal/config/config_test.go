package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := Default()
	if *cfg != *def {
		t.Fatalf("Load(\"\") = %+v, want defaults %+v", cfg, def)
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("missing config file must be an error")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	body := []byte("addr: \":9090\"\nsolver: backtrack\ngenerator:\n  difficulty: hard\n")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":9090" || cfg.Solver != "backtrack" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Generator.Difficulty != "hard" {
		t.Fatalf("generator.difficulty = %q, want hard", cfg.Generator.Difficulty)
	}
	// untouched keys keep their defaults
	if cfg.PersistPath != Default().PersistPath || cfg.Generator.Size != 9 {
		t.Fatalf("defaults lost for untouched keys: %+v", cfg)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("addr: [unterminated"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("malformed YAML must be an error")
	}
}
