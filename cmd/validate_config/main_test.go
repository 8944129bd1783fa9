package main

import (
	"strings"
	"testing"

	"github.com/gonewx/carnival/pkg/config"
)

func TestCheckCoverageDefaults(t *testing.T) {
	if warnings := checkCoverage(config.DefaultGameConfig()); len(warnings) != 0 {
		t.Errorf("Default config should have full coverage, got %v", warnings)
	}
}

func TestCheckCoverageMissing(t *testing.T) {
	cfg := config.DefaultGameConfig()
	delete(cfg.Scoring.Values, "duck")
	delete(cfg.HitBoxes, "bomb")
	cfg.Scoring.Values["missile"] = 2

	warnings := checkCoverage(cfg)
	if len(warnings) != 3 {
		t.Fatalf("Expected 3 warnings, got %v", warnings)
	}

	joined := strings.Join(warnings, "\n")
	for _, key := range []string{"scoring.values.duck", "hitBoxes.bomb", "scoring.values.missile"} {
		if !strings.Contains(joined, key) {
			t.Errorf("Missing warning for %s in %v", key, warnings)
		}
	}
}
