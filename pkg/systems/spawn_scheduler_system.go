package systems

import (
	"log"
	"math/rand"

	"github.com/gonewx/carnival/pkg/config"
	"github.com/gonewx/carnival/pkg/ecs"
	"github.com/gonewx/carnival/pkg/entities"
	"github.com/gonewx/carnival/pkg/game"
	"github.com/gonewx/carnival/pkg/motion"
	"github.com/gonewx/carnival/pkg/types"
)

// SpawnSchedulerSystem 回合计时与靶子生成
//
// 计时节拍由帧间隔累加得到：每满 TickInterval 秒触发一次节拍，
// 剩余时间减 1；归零时结束回合（本节拍不生成），否则生成一波靶子。
// 一波包含三条航道各一个靶子，外加按概率出现的一个掉落物。
type SpawnSchedulerSystem struct {
	entityManager *ecs.EntityManager
	sprites       entities.SpriteSource
	gameState     *game.GameState
	config        *config.GameConfig
	rng           *rand.Rand
	catalog       *EnemyCatalog
	sounds        game.SoundPlayer
	listener      RoundListener

	tickTimer    float64 // 距上次节拍累计的时间
	armed        bool    // 节拍是否处于激活状态
	wavesSpawned int     // 本回合已生成的波数
}

// NewSpawnSchedulerSystem 创建生成调度系统
//
// 参数:
//   - em: EntityManager 实例
//   - sprites: 贴图来源，可为 nil（无界面模拟）
//   - gs: 游戏状态
//   - cfg: 玩法配置
//   - rng: 随机数源（测试中传入固定种子）
//   - catalog: 靶子目录
func NewSpawnSchedulerSystem(em *ecs.EntityManager, sprites entities.SpriteSource, gs *game.GameState, cfg *config.GameConfig, rng *rand.Rand, catalog *EnemyCatalog) *SpawnSchedulerSystem {
	log.Printf("[SpawnSchedulerSystem] Initialized with round=%ds, interval=%.2fs, drop chance=1/%d",
		cfg.Round.Seconds, cfg.Round.TickInterval, cfg.Drop.ChanceDenominator)
	return &SpawnSchedulerSystem{
		entityManager: em,
		sprites:       sprites,
		gameState:     gs,
		config:        cfg,
		rng:           rng,
		catalog:       catalog,
	}
}

// SetSoundPlayer 设置音效播放器（可为 nil）
func (s *SpawnSchedulerSystem) SetSoundPlayer(sp game.SoundPlayer) {
	s.sounds = sp
}

// SetListener 设置回合事件监听器（可为 nil）
func (s *SpawnSchedulerSystem) SetListener(l RoundListener) {
	s.listener = l
}

// Start 开始新回合并激活节拍
// 回合已在进行中时为空操作，返回 false
func (s *SpawnSchedulerSystem) Start() bool {
	if !s.gameState.StartRound(s.config.Round.Seconds) {
		return false
	}

	s.tickTimer = 0
	s.armed = true
	s.wavesSpawned = 0

	log.Printf("[SpawnSchedulerSystem] Round %d started (%ds)", s.gameState.RoundsPlayed, s.gameState.TimeRemaining)
	s.playSound(game.SoundStart)
	if s.listener != nil {
		s.listener.OnRoundStarted(s.gameState)
	}
	return true
}

// Stop 结束回合并取消节拍
// 取消后累计的时间被清空，不会再有任何生成
func (s *SpawnSchedulerSystem) Stop() {
	wasArmed := s.armed
	s.armed = false
	s.tickTimer = 0

	if s.gameState.IsRunning() {
		s.gameState.StopRound()
	} else if !wasArmed {
		return
	}

	log.Printf("[SpawnSchedulerSystem] Round over: score=%d, high score=%d, waves=%d",
		s.gameState.Score, s.gameState.HighScore, s.wavesSpawned)
	s.playSound(game.SoundOver)
	if s.listener != nil {
		s.listener.OnRoundEnded(s.gameState)
	}
}

// IsArmed 节拍是否激活
func (s *SpawnSchedulerSystem) IsArmed() bool {
	return s.armed
}

// WavesSpawned 本回合已生成的波数
func (s *SpawnSchedulerSystem) WavesSpawned() int {
	return s.wavesSpawned
}

// Update 累加帧间隔，每满一个节拍间隔执行一次节拍
func (s *SpawnSchedulerSystem) Update(deltaTime float64) {
	if !s.armed {
		return
	}

	s.tickTimer += deltaTime
	for s.armed && s.tickTimer >= s.config.Round.TickInterval {
		s.tickTimer -= s.config.Round.TickInterval
		s.tick()
	}
}

// tick 执行一次计时节拍
func (s *SpawnSchedulerSystem) tick() {
	// 已经取消的回合不再生成
	if !s.gameState.IsRunning() {
		s.armed = false
		s.tickTimer = 0
		return
	}

	result := s.gameState.Tick()
	if s.listener != nil {
		s.listener.OnTick(result)
	}

	if result.Ended {
		s.Stop()
		return
	}
	if result.Spawn {
		s.SpawnWave()
	}
}

// SpawnWave 生成一波靶子：三条航道各一个，外加可能的掉落物
//
// 返回:
//   - []ecs.EntityID: 本波生成的实体（3 或 4 个）
func (s *SpawnSchedulerSystem) SpawnWave() []ecs.EntityID {
	b := s.config.Bounds
	lanes := s.config.Lanes
	m := s.config.Motion

	spawned := make([]ecs.EntityID, 0, 4)

	// 第一行：从左侧边摇摆边向右平移
	spawned = s.appendSpawn(spawned, types.SourceLaneA, b.Bottom, lanes.Row1,
		motion.BounceTranslate(b.RightOver, m.LaneADuration, m.BounceAngle, m.BounceStep))

	// 第二行：从右侧边旋转边向左平移
	spawned = s.appendSpawn(spawned, types.SourceLaneB, b.Right, lanes.Row2,
		motion.RotateTranslate(b.BottomOver, m.LaneBDuration, m.LaneBRotationSpeed))

	// 第三行：前进-停顿-起跳-落地，无限循环直到离开场地
	spawned = s.appendSpawn(spawned, types.SourceLaneC, b.Bottom, lanes.Row3,
		motion.HopSequence(m.HopDistance, m.HopHeight, m.HopStep))

	// 随机掉落
	d := s.config.Drop
	if s.rng.Intn(d.ChanceDenominator)+1 == d.TriggerValue {
		kind := s.catalog.Draw(s.rng)
		x := float64(d.MinX + s.rng.Intn(d.MaxX-d.MinX+1))
		duration := d.MinDuration + s.rng.Float64()*(d.MaxDuration-d.MinDuration)
		spawned = s.spawnKind(spawned, kind, types.SourceDrop, x, b.Top,
			motion.BounceFall(b.BottomOver, duration, m.BounceAngle, m.BounceStep))
	}

	s.wavesSpawned++
	return spawned
}

// appendSpawn 抽取靶子类型并生成
func (s *SpawnSchedulerSystem) appendSpawn(spawned []ecs.EntityID, source types.SpawnSource, x, y float64, profile motion.Profile) []ecs.EntityID {
	kind := s.catalog.Draw(s.rng)
	return s.spawnKind(spawned, kind, source, x, y, profile)
}

func (s *SpawnSchedulerSystem) spawnKind(spawned []ecs.EntityID, kind types.EnemyKind, source types.SpawnSource, x, y float64, profile motion.Profile) []ecs.EntityID {
	id, err := entities.NewEnemyEntity(s.entityManager, s.sprites, entities.EnemySpawn{
		Tag:     string(kind),
		Source:  source,
		X:       x,
		Y:       y,
		Profile: profile,
		HitBox:  s.config.HitBoxFor(string(kind)),
	})
	if err != nil {
		log.Printf("[SpawnSchedulerSystem] Warning: Failed to spawn %s on %s: %v", kind, source, err)
		return spawned
	}
	return append(spawned, id)
}

func (s *SpawnSchedulerSystem) playSound(soundID string) {
	if s.sounds != nil {
		s.sounds.PlaySound(soundID)
	}
}
