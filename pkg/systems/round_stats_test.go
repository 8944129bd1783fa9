package systems

import "testing"

func newTestStats(w *testWorld) *RoundStats {
	stats := &RoundStats{}
	w.scheduler.SetListener(RoundListeners{stats, w.listener})
	w.resolver.SetListener(RoundListeners{stats, w.listener})
	return stats
}

func TestRoundStatsCountsTaps(t *testing.T) {
	w := newTestWorld(1, 0)
	stats := newTestStats(w)
	w.scheduler.Start()

	spawnAt(t, w, "boat", 200, 300)
	spawnAt(t, w, "duck", 500, 300)
	spawnAt(t, w, "bomb", 800, 300)

	w.resolver.HandleTap(200, 300)
	w.resolver.HandleTap(500, 300)
	w.resolver.HandleTap(800, 300)
	w.resolver.HandleTap(500, 700)

	want := RoundStats{Hits: 3, Bombs: 1, Misses: 1, BestStreak: 2}
	if *stats != want {
		t.Errorf("stats = %+v, want %+v", *stats, want)
	}

	// 两个监听器收到相同的事件
	if len(w.listener.changes) != 4 || w.listener.started != 1 {
		t.Errorf("second listener saw %d changes and %d starts, want 4 and 1",
			len(w.listener.changes), w.listener.started)
	}
}

func TestRoundStatsResetOnNewRound(t *testing.T) {
	w := newTestWorld(1, 0)
	stats := newTestStats(w)
	w.scheduler.Start()

	spawnAt(t, w, "target", 400, 400)
	w.resolver.HandleTap(400, 400)
	w.step(1.0)
	if stats.Ticks != 1 || stats.Hits != 1 {
		t.Fatalf("stats = %+v, want 1 tick and 1 hit", *stats)
	}

	// 回合结束后统计保留
	w.scheduler.Stop()
	if stats.Hits != 1 || w.listener.ended != 1 {
		t.Errorf("stats after round end = %+v (ended %d), want hits kept", *stats, w.listener.ended)
	}

	w.scheduler.Start()
	if *stats != (RoundStats{}) {
		t.Errorf("stats after restart = %+v, want zero", *stats)
	}
}
