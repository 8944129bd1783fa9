package main

import (
	"math/rand"

	"github.com/gonewx/carnival/pkg/components"
	"github.com/gonewx/carnival/pkg/config"
	"github.com/gonewx/carnival/pkg/ecs"
	"github.com/gonewx/carnival/pkg/game"
	"github.com/gonewx/carnival/pkg/systems"
	"github.com/gonewx/carnival/pkg/types"
)

// frameTime 模拟的帧间隔（60 TPS）
const frameTime = 1.0 / 60.0

// Options 模拟参数
type Options struct {
	Rounds        int     // 回合数
	Seed          int64   // 生成随机种子，射手使用 Seed+1
	TapsPerSecond float64 // 平均每秒点击次数
	Accuracy      float64 // 瞄准活动靶子的概率，其余点击随机落点
	AvoidBombs    bool    // 瞄准时跳过炸弹
}

// RoundReport 一个回合的统计
type RoundReport struct {
	Round      int
	Score      int
	HighScore  int
	Waves      int
	Taps       int
	Hits       int
	Misses     int
	BestStreak int
}

// simulator 无界面的靶场：与 GameScene 相同的系统组合，不带贴图和音效
type simulator struct {
	opts      Options
	em        *ecs.EntityManager
	cfg       *config.GameConfig
	gs        *game.GameState
	shooter   *rand.Rand
	scheduler *systems.SpawnSchedulerSystem
	resolver  *systems.HitResolverSystem
	motion    *systems.MotionSystem
	lifetime  *systems.LifetimeSystem
	fade      *systems.FadeSystem
	sweep     *systems.BoundarySweepSystem
	stats     *systems.RoundStats
}

func newSimulator(cfg *config.GameConfig, store game.HighScoreStore, opts Options) *simulator {
	em := ecs.NewEntityManager()
	gs := game.NewGameState(store.Get(), game.ScoringRulesFromConfig(cfg))
	rng := rand.New(rand.NewSource(opts.Seed))

	s := &simulator{
		opts:     opts,
		em:       em,
		cfg:      cfg,
		gs:       gs,
		shooter:  rand.New(rand.NewSource(opts.Seed + 1)),
		motion:   systems.NewMotionSystem(em),
		lifetime: systems.NewLifetimeSystem(em),
		fade:     systems.NewFadeSystem(em),
		sweep:    systems.NewBoundarySweepSystem(em, cfg.Bounds),
		stats:    &systems.RoundStats{},
	}
	s.scheduler = systems.NewSpawnSchedulerSystem(em, nil, gs, cfg, rng, systems.DefaultEnemyCatalog())
	s.resolver = systems.NewHitResolverSystem(em, nil, gs, cfg, rng, store, s.scheduler)
	s.scheduler.SetListener(s.stats)
	s.resolver.SetListener(s.stats)
	return s
}

// runRound 开始一个回合并逐帧推进直到结束
func (s *simulator) runRound() RoundReport {
	report := RoundReport{Round: s.gs.RoundsPlayed + 1}
	if !s.scheduler.Start() {
		return report
	}

	tapChance := s.opts.TapsPerSecond * frameTime
	for s.gs.IsRunning() {
		if s.shooter.Float64() < tapChance {
			s.resolver.HandleTap(s.aim())
			report.Taps++
		}
		s.step(frameTime)
	}

	report.Score = s.gs.Score
	report.HighScore = s.gs.HighScore
	report.Waves = s.scheduler.WavesSpawned()
	report.Hits = s.stats.Hits
	report.Misses = s.stats.Misses
	report.BestStreak = s.stats.BestStreak
	return report
}

// step 与 GameScene 相同的更新顺序
func (s *simulator) step(dt float64) {
	s.scheduler.Update(dt)
	s.motion.Update(dt)
	s.lifetime.Update(dt)
	s.fade.Update()
	s.sweep.Update()
	s.em.RemoveMarkedEntities()
}

// aim 选择点击位置：按准确率瞄准一个活动靶子，否则随机落点
func (s *simulator) aim() (float64, float64) {
	if s.shooter.Float64() < s.opts.Accuracy {
		if targets := s.liveTargets(); len(targets) > 0 {
			id := targets[s.shooter.Intn(len(targets))]
			pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
			return pos.X, pos.Y
		}
	}
	return s.shooter.Float64() * config.GameWindowWidth, s.shooter.Float64() * config.GameWindowHeight
}

// liveTargets 当前可以计分的靶子（场内、未被击中）
func (s *simulator) liveTargets() []ecs.EntityID {
	ids := ecs.GetEntitiesWith3[
		*components.PositionComponent,
		*components.ClickableComponent,
		*components.EnemyComponent,
	](s.em)

	targets := make([]ecs.EntityID, 0, len(ids))
	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		clickable, _ := ecs.GetComponent[*components.ClickableComponent](s.em, id)
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.em, id)

		if !clickable.IsEnabled || enemy.IsHit || !enemy.Recognized {
			continue
		}
		if s.opts.AvoidBombs && enemy.Kind == types.EnemyBomb {
			continue
		}
		if pos.X < 0 || pos.X > config.GameWindowWidth || pos.Y < 0 || pos.Y > config.GameWindowHeight {
			continue
		}
		targets = append(targets, id)
	}
	return targets
}
