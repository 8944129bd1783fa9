package app

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/gonewx/carnival/pkg/embedded"
)

func TestLoadGameConfigDefaults(t *testing.T) {
	embedded.Init(nil)

	cfg, err := LoadGameConfig("")
	if err != nil {
		t.Fatalf("LoadGameConfig failed: %v", err)
	}
	if cfg.Round.Seconds != 60 {
		t.Errorf("Round.Seconds = %d, want default 60", cfg.Round.Seconds)
	}
}

func TestLoadGameConfigEmbedded(t *testing.T) {
	embedded.Init(fstest.MapFS{
		"data/game.yaml": {Data: []byte("round:\n  seconds: 30\n")},
	})
	defer embedded.Init(nil)

	cfg, err := LoadGameConfig("")
	if err != nil {
		t.Fatalf("LoadGameConfig failed: %v", err)
	}
	if cfg.Round.Seconds != 30 {
		t.Errorf("Round.Seconds = %d, want 30 from embedded data", cfg.Round.Seconds)
	}
}

func TestLoadGameConfigEmbeddedMissing(t *testing.T) {
	embedded.Init(fstest.MapFS{})
	defer embedded.Init(nil)

	if _, err := LoadGameConfig(""); err == nil {
		t.Error("Expected error when embedded game.yaml is missing")
	}
}

func TestLoadGameConfigFromPath(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "game.yaml")
	if err := os.WriteFile(valid, []byte("round:\n  seconds: 45\n"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	cfg, err := LoadGameConfig(valid)
	if err != nil {
		t.Fatalf("LoadGameConfig(%s) failed: %v", valid, err)
	}
	if cfg.Round.Seconds != 45 {
		t.Errorf("Round.Seconds = %d, want 45", cfg.Round.Seconds)
	}

	invalid := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(invalid, []byte("round:\n  seconds: 0\n"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := LoadGameConfig(invalid); err == nil {
		t.Error("Expected validation error for round.seconds = 0")
	}

	if _, err := LoadGameConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Expected error for a missing file")
	}
}
