package systems

import (
	"math/rand"

	"github.com/gonewx/carnival/pkg/config"
	"github.com/gonewx/carnival/pkg/ecs"
	"github.com/gonewx/carnival/pkg/game"
)

// recordingSoundPlayer 记录播放过的音效
type recordingSoundPlayer struct {
	played []string
}

func (r *recordingSoundPlayer) PlaySound(soundID string) bool {
	r.played = append(r.played, soundID)
	return true
}

// recordingListener 记录回合与计分事件
type recordingListener struct {
	started int
	ended   int
	ticks   []game.TickResult
	changes []game.ScoreChange
}

func (r *recordingListener) OnRoundStarted(gs *game.GameState) { r.started++ }
func (r *recordingListener) OnTick(result game.TickResult)   { r.ticks = append(r.ticks, result) }
func (r *recordingListener) OnRoundEnded(gs *game.GameState)  { r.ended++ }
func (r *recordingListener) OnScoreChange(change game.ScoreChange) {
	r.changes = append(r.changes, change)
}

// testWorld 组装无界面的靶场核心
type testWorld struct {
	em        *ecs.EntityManager
	cfg       *config.GameConfig
	gs        *game.GameState
	store     *game.MemoryHighScoreStore
	sounds    *recordingSoundPlayer
	listener  *recordingListener
	scheduler *SpawnSchedulerSystem
	resolver  *HitResolverSystem
	motion    *MotionSystem
	sweep     *BoundarySweepSystem
	lifetime  *LifetimeSystem
	fade      *FadeSystem
}

func newTestWorld(seed int64, highScore int) *testWorld {
	w := &testWorld{
		em:       ecs.NewEntityManager(),
		cfg:      config.DefaultGameConfig(),
		store:    game.NewMemoryHighScoreStore(highScore),
		sounds:   &recordingSoundPlayer{},
		listener: &recordingListener{},
	}
	w.gs = game.NewGameState(w.store.Get(), game.ScoringRulesFromConfig(w.cfg))

	rng := rand.New(rand.NewSource(seed))
	w.scheduler = NewSpawnSchedulerSystem(w.em, nil, w.gs, w.cfg, rng, DefaultEnemyCatalog())
	w.scheduler.SetSoundPlayer(w.sounds)
	w.scheduler.SetListener(w.listener)

	w.resolver = NewHitResolverSystem(w.em, nil, w.gs, w.cfg, rng, w.store, w.scheduler)
	w.resolver.SetSoundPlayer(w.sounds)
	w.resolver.SetListener(w.listener)

	w.motion = NewMotionSystem(w.em)
	w.sweep = NewBoundarySweepSystem(w.em, w.cfg.Bounds)
	w.lifetime = NewLifetimeSystem(w.em)
	w.fade = NewFadeSystem(w.em)
	return w
}

// step 按场景中的顺序推进一帧
func (w *testWorld) step(dt float64) {
	w.scheduler.Update(dt)
	w.motion.Update(dt)
	w.lifetime.Update(dt)
	w.fade.Update()
	w.sweep.Update()
	w.em.RemoveMarkedEntities()
}
