package systems

import (
	"math/rand"
	"testing"

	"github.com/gonewx/carnival/pkg/types"
)

func TestEnemyCatalogDrawUniform(t *testing.T) {
	catalog := DefaultEnemyCatalog()
	rng := rand.New(rand.NewSource(1))

	counts := make(map[types.EnemyKind]int)
	const draws = 4000
	for i := 0; i < draws; i++ {
		counts[catalog.Draw(rng)]++
	}

	if len(counts) != 4 {
		t.Fatalf("Expected all 4 kinds to be drawn, got %v", counts)
	}
	for kind, n := range counts {
		// 期望 1000，允许较宽的误差
		if n < 850 || n > 1150 {
			t.Errorf("Kind %s drawn %d times out of %d", kind, n, draws)
		}
	}
}

// TestEnemyCatalogEmptyFallback 目录为空时回退到 target
func TestEnemyCatalogEmptyFallback(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	if got := NewEnemyCatalog(nil).Draw(rng); got != types.EnemyTarget {
		t.Errorf("Empty catalog drew %s, want target", got)
	}

	var nilCatalog *EnemyCatalog
	if got := nilCatalog.Draw(rng); got != types.FallbackEnemyKind {
		t.Errorf("Nil catalog drew %s, want %s", got, types.FallbackEnemyKind)
	}
}

func TestEnemyCatalogKindsIsCopy(t *testing.T) {
	catalog := DefaultEnemyCatalog()
	kinds := catalog.Kinds()
	kinds[0] = "missile"

	if catalog.Kinds()[0] == "missile" {
		t.Error("Kinds() must return a copy")
	}
}
