package types

import "testing"

func TestParseEnemyKind(t *testing.T) {
	tests := []struct {
		tag      string
		wantKind EnemyKind
		wantOK   bool
	}{
		{"bomb", EnemyBomb, true},
		{"duck", EnemyDuck, true},
		{"boat", EnemyBoat, true},
		{"target", EnemyTarget, true},
		{"missile", "", false}, // 掉落名单里的成员不参与计分
		{"", "", false},
		{"Boat", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			kind, ok := ParseEnemyKind(tt.tag)
			if ok != tt.wantOK || kind != tt.wantKind {
				t.Errorf("ParseEnemyKind(%q) = (%q, %v), want (%q, %v)", tt.tag, kind, ok, tt.wantKind, tt.wantOK)
			}
		})
	}
}

func TestDropKindsOverlapEnemyKinds(t *testing.T) {
	overlap := 0
	for _, drop := range AllDropKinds() {
		if _, ok := ParseEnemyKind(string(drop)); ok {
			overlap++
		}
	}
	if overlap != 3 {
		t.Errorf("Expected 3 drop kinds shared with the enemy catalog, got %d", overlap)
	}
}
