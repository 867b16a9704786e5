package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "dodge.yaml")

	data := []byte(`
tick:
  interval_ms: 100
spawn:
  probability: 0.25
board:
  min_width: 20
  min_height: 8
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Tick.IntervalMS != 100 {
		t.Errorf("IntervalMS = %d, expected 100", cfg.Tick.IntervalMS)
	}
	if cfg.Spawn.Probability != 0.25 {
		t.Errorf("Probability = %f, expected 0.25", cfg.Spawn.Probability)
	}
	if cfg.Board.MinWidth != 20 || cfg.Board.MinHeight != 8 {
		t.Errorf("Board = %+v, expected 20x8 floors", cfg.Board)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err == nil {
		t.Error("Load() should fail for an explicit path that does not exist")
	}
}

func TestLoadSanitizesBadValues(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "dodge.yaml")

	data := []byte(`
tick:
  interval_ms: -5
spawn:
  probability: 1.7
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	def := Default()
	if cfg.Tick.IntervalMS != def.Tick.IntervalMS {
		t.Errorf("bad interval not sanitized, got %d", cfg.Tick.IntervalMS)
	}
	if cfg.Spawn.Probability != def.Spawn.Probability {
		t.Errorf("bad probability not sanitized, got %f", cfg.Spawn.Probability)
	}
	if cfg.Board.MinWidth != def.Board.MinWidth {
		t.Errorf("missing board floor not defaulted, got %d", cfg.Board.MinWidth)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	// The embedded YAML and the hardcoded fallback must agree, or behavior
	// would depend on which path the loader ends up taking.
	if len(DefaultYAML()) == 0 {
		t.Fatal("embedded default YAML is empty")
	}

	def := Default()
	if def.Tick.IntervalMS != 200 {
		t.Errorf("default tick = %d ms, expected 200", def.Tick.IntervalMS)
	}
	if def.Spawn.Probability != 0.1 {
		t.Errorf("default spawn probability = %f, expected 0.1", def.Spawn.Probability)
	}
}
