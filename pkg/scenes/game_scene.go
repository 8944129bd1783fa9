package scenes

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/gonewx/carnival/pkg/config"
	"github.com/gonewx/carnival/pkg/ecs"
	"github.com/gonewx/carnival/pkg/entities"
	"github.com/gonewx/carnival/pkg/game"
	"github.com/gonewx/carnival/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameSceneOptions 场景依赖
type GameSceneOptions struct {
	Config     *config.GameConfig    // 玩法配置，nil 时使用默认值
	HighScores game.HighScoreStore   // 最高分存储，nil 时使用内存存储
	Settings   *game.SettingsManager // 设置管理器，可为 nil
	Audio      *game.AudioManager    // 音效，可为 nil（静音）
	Seed       int64                 // 随机种子，0 表示使用当前时间
}

// GameScene 射击场主场景
//
// 场景只负责组装实体和系统，并按固定顺序驱动它们：
// 输入 → 生成节拍 → 动作 → 生命周期 → 淡出 → 边界剔除 → 清理。
// 计分、生成、剔除逻辑都在 systems 包中，可以脱离场景单独测试。
type GameScene struct {
	resourceManager *game.ResourceManager
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager

	entityManager *ecs.EntityManager
	gameState     *game.GameState
	config        *config.GameConfig

	inputSystem     *systems.InputSystem
	spawnScheduler  *systems.SpawnSchedulerSystem
	motionSystem    *systems.MotionSystem
	lifetimeSystem  *systems.LifetimeSystem
	fadeSystem      *systems.FadeSystem
	boundarySweep   *systems.BoundarySweepSystem
	hitResolver     *systems.HitResolverSystem
	hudSystem       *systems.HUDSystem
	roundStats      *systems.RoundStats
	renderSystem    *systems.RenderSystem
	startButtonID   ecs.EntityID
	debugOverlay    bool
}

// NewGameScene 创建射击场场景
//
// 参数:
//   - rm: 资源管理器（贴图、字体），可为 nil（不绘制贴图）
//   - sm: 场景管理器
//   - opts: 场景依赖
//
// 返回:
//   - *GameScene: 场景实例
//   - error: 配置无效或开始按钮创建失败时返回错误
func NewGameScene(rm *game.ResourceManager, sm *game.SceneManager, opts GameSceneOptions) (*GameScene, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultGameConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	store := opts.HighScores
	if store == nil {
		store = game.NewMemoryHighScoreStore(0)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	// 避免把 nil 指针包装成非 nil 接口
	var sprites entities.SpriteSource
	if rm != nil {
		sprites = rm
	}

	s := &GameScene{
		resourceManager: rm,
		sceneManager:    sm,
		settingsManager: opts.Settings,
		entityManager:   ecs.NewEntityManager(),
		config:          cfg,
	}
	s.gameState = game.NewGameState(store.Get(), game.ScoringRulesFromConfig(cfg))

	// 1. 场地：背景、水波、货架
	entities.NewBackgroundEntity(s.entityManager, sprites, config.GameWindowWidth, config.GameWindowHeight)
	waves := entities.NewWaveDecorations(s.entityManager, sprites, cfg.Bounds, cfg.Lanes)
	entities.NewShelfDecorations(s.entityManager, sprites, cfg.Lanes, config.GameWindowWidth)
	log.Printf("[GameScene] Field decorated with %d waves and 3 shelves", len(waves))

	// 2. 开始按钮
	buttonID, err := entities.NewStartButtonEntity(s.entityManager,
		config.GameWindowWidth/2, config.StartLabelY,
		config.StartButtonWidth, config.StartButtonHeight, "Start Game")
	if err != nil {
		return nil, fmt.Errorf("failed to create start button: %w", err)
	}
	s.startButtonID = buttonID

	// 3. 系统
	s.spawnScheduler = systems.NewSpawnSchedulerSystem(s.entityManager, sprites, s.gameState, cfg, rng, systems.DefaultEnemyCatalog())
	s.hitResolver = systems.NewHitResolverSystem(s.entityManager, sprites, s.gameState, cfg, rng, store, s.spawnScheduler)
	s.inputSystem = systems.NewInputSystem(s.entityManager, s.hitResolver)
	s.motionSystem = systems.NewMotionSystem(s.entityManager)
	s.lifetimeSystem = systems.NewLifetimeSystem(s.entityManager)
	s.fadeSystem = systems.NewFadeSystem(s.entityManager)
	s.boundarySweep = systems.NewBoundarySweepSystem(s.entityManager, cfg.Bounds)
	s.hudSystem = systems.NewHUDSystem(s.entityManager, s.gameState, buttonID)
	s.renderSystem = systems.NewRenderSystem(s.entityManager)

	s.roundStats = &systems.RoundStats{}

	listeners := systems.RoundListeners{s.hudSystem, s.roundStats}
	s.spawnScheduler.SetListener(listeners)
	s.hitResolver.SetListener(listeners)
	if opts.Audio != nil {
		s.spawnScheduler.SetSoundPlayer(opts.Audio)
		s.hitResolver.SetSoundPlayer(opts.Audio)
	}

	log.Printf("[GameScene] Initialized (seed=%d, high score=%d)", seed, s.gameState.HighScore)
	return s, nil
}

// Update 推进一帧
func (s *GameScene) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		s.debugOverlay = !s.debugOverlay
	}

	s.inputSystem.Update(deltaTime)
	s.step(deltaTime)
}

// step 按固定顺序更新非输入系统
// 点击处理必须在节拍之前完成，剔除在所有移动之后
func (s *GameScene) step(deltaTime float64) {
	s.spawnScheduler.Update(deltaTime)
	s.motionSystem.Update(deltaTime)
	s.lifetimeSystem.Update(deltaTime)
	s.fadeSystem.Update()
	s.boundarySweep.Update()
	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制场景：实体在下，HUD 在上
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)

	if s.resourceManager != nil {
		s.hudSystem.Draw(screen, s.resourceManager.FontFace())
	}

	if s.debugOverlay {
		s.drawDebugOverlay(screen)
	}
}

// SaveOnExit 实现 game.Saveable
// 最高分在刷新时已经同步写入，这里只保存设置
func (s *GameScene) SaveOnExit() bool {
	if s.settingsManager == nil {
		return true
	}
	if err := s.settingsManager.Save(); err != nil {
		log.Printf("[GameScene] Warning: Failed to save settings on exit: %v", err)
		return false
	}
	return true
}

// GameState 返回场景的游戏状态
func (s *GameScene) GameState() *game.GameState {
	return s.gameState
}
