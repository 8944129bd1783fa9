package main

import (
	"testing"

	"github.com/gonewx/carnival/pkg/config"
	"github.com/gonewx/carnival/pkg/game"
)

func TestSimulatorRoundLifecycle(t *testing.T) {
	store := game.NewMemoryHighScoreStore(0)
	sim := newSimulator(config.DefaultGameConfig(), store, Options{
		Seed:          42,
		TapsPerSecond: 4,
		Accuracy:      0.9,
		AvoidBombs:    true,
	})

	r := sim.runRound()
	if r.Round != 1 {
		t.Errorf("Round = %d, want 1", r.Round)
	}
	if r.Waves != 59 {
		t.Errorf("Waves = %d, want 59", r.Waves)
	}
	if r.Taps == 0 || r.Hits == 0 {
		t.Errorf("Expected taps and hits, got %+v", r)
	}
	// 每次点击至少产生一次命中或失误
	if r.Hits+r.Misses < r.Taps {
		t.Errorf("Hits %d + misses %d below taps %d", r.Hits, r.Misses, r.Taps)
	}
	if r.BestStreak == 0 {
		t.Error("Expected a non-zero best streak")
	}
	if r.HighScore < r.Score {
		t.Errorf("High score %d below score %d", r.HighScore, r.Score)
	}
	if store.Get() != r.HighScore {
		t.Errorf("Store = %d, want %d", store.Get(), r.HighScore)
	}
}

// TestSimulatorDeterministic 相同种子得到相同结果
func TestSimulatorDeterministic(t *testing.T) {
	run := func() []RoundReport {
		sim := newSimulator(config.DefaultGameConfig(), game.NewMemoryHighScoreStore(0), Options{
			Seed:          7,
			TapsPerSecond: 3,
			Accuracy:      0.6,
		})
		return []RoundReport{sim.runRound(), sim.runRound()}
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("Round %d differs: %+v vs %+v", i+1, a[i], b[i])
		}
	}
	if a[1].Round != 2 {
		t.Errorf("Second report round = %d, want 2", a[1].Round)
	}
	if a[1].HighScore < a[0].HighScore {
		t.Error("High score must never decrease across rounds")
	}
}

func TestSimulatorNoTaps(t *testing.T) {
	sim := newSimulator(config.DefaultGameConfig(), game.NewMemoryHighScoreStore(5), Options{Seed: 3})

	r := sim.runRound()
	if r.Taps != 0 || r.Score != 0 || r.HighScore != 5 {
		t.Errorf("Idle shooter report = %+v", r)
	}
	if sim.sweep.TotalCulled() == 0 {
		t.Error("Untouched targets should leave the field and be culled")
	}
}
