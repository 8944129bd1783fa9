package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultGameConfigIsValid(t *testing.T) {
	cfg := DefaultGameConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultGameConfig() should be valid, got: %v", err)
	}

	if cfg.Bounds.BottomOver != -101 || cfg.Bounds.RightOver != 1125 || cfg.Bounds.TopOver != 869 {
		t.Errorf("Unexpected over-bounds: %+v", cfg.Bounds)
	}

	rows := cfg.LaneRows()
	if rows != [3]float64{600, 400, 200} {
		t.Errorf("LaneRows() = %v, want [600 400 200]", rows)
	}
}

func TestParseGameConfigKeepsDefaultsForMissingFields(t *testing.T) {
	cfg, err := ParseGameConfig([]byte("round:\n  seconds: 30\n"))
	if err != nil {
		t.Fatalf("ParseGameConfig() error: %v", err)
	}

	if cfg.Round.Seconds != 30 {
		t.Errorf("Round.Seconds = %d, want 30", cfg.Round.Seconds)
	}
	if cfg.Round.TickInterval != 1.0 {
		t.Errorf("Round.TickInterval = %v, want default 1.0", cfg.Round.TickInterval)
	}
	if cfg.Lanes.Row2 != 400 {
		t.Errorf("Lanes.Row2 = %v, want default 400", cfg.Lanes.Row2)
	}
}

func TestParseGameConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"zero round", "round:\n  seconds: 0\n", "round.seconds"},
		{"negative tick", "round:\n  tickInterval: -1\n", "round.tickInterval"},
		{"trigger out of range", "drop:\n  triggerValue: 4\n", "drop.triggerValue"},
		{"inverted drop x", "drop:\n  minX: 900\n", "drop.minX"},
		{"inverted over-bound", "bounds:\n  rightOver: 1000\n", "bounds.rightOver"},
		{"lane outside field", "lanes:\n  row1: 900\n", "lanes.row1"},
		{"bad removal scale", "effects:\n  removalScaleY: 2\n", "effects.removalScaleY"},
		{"malformed yaml", "round: [\n", "parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGameConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatalf("Expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Error %q should mention %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLoadGameConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.yaml")
	content := "scoring:\n  bombPenalty: 7\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	cfg, err := LoadGameConfig(path)
	if err != nil {
		t.Fatalf("LoadGameConfig() error: %v", err)
	}
	if cfg.Scoring.BombPenalty != 7 {
		t.Errorf("BombPenalty = %d, want 7", cfg.Scoring.BombPenalty)
	}

	if _, err := LoadGameConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadGameConfig() on a missing file should fail")
	}
}

func TestHitBoxFor(t *testing.T) {
	cfg := DefaultGameConfig()

	if box := cfg.HitBoxFor("boat"); box.Width != 140 || box.Height != 90 {
		t.Errorf("HitBoxFor(boat) = %+v", box)
	}
	if box := cfg.HitBoxFor("missile"); box.Width != 100 || box.Height != 100 {
		t.Errorf("HitBoxFor(missile) should fall back to 100x100, got %+v", box)
	}
}

func TestFieldScreenConversion(t *testing.T) {
	if got := FieldToScreenY(600); got != 168 {
		t.Errorf("FieldToScreenY(600) = %v, want 168", got)
	}
	if got := ScreenToFieldY(FieldToScreenY(-101)); got != -101 {
		t.Errorf("Round trip should be identity, got %v", got)
	}
}
