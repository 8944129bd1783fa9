package systems

import (
	"log"
	"math/rand"

	"github.com/gonewx/carnival/pkg/components"
	"github.com/gonewx/carnival/pkg/config"
	"github.com/gonewx/carnival/pkg/ecs"
	"github.com/gonewx/carnival/pkg/entities"
	"github.com/gonewx/carnival/pkg/game"
	"github.com/gonewx/carnival/pkg/types"
)

// RoundStarter 开始回合（由 SpawnSchedulerSystem 实现）
type RoundStarter interface {
	Start() bool
}

// TapOutcome 一次点击的处理结果
type TapOutcome struct {
	ImpactID ecs.EntityID       // 弹孔实体
	Started  bool               // 本次点击开始了新回合
	Hits     []ecs.EntityID     // 被击中并开始消失的靶子（按实体ID顺序）
	Changes  []game.ScoreChange // 每次计分操作的结果，按发生顺序
	Miss     bool               // 回合中没有任何有效命中
}

// HitResolverSystem 处理点击命中与计分
//
// 每次点击都会在点击位置生成弹孔。
// 未开始时只有点中"开始游戏"按钮才有效；回合进行中，所有包含点击位置的靶子
// 按实体ID顺序依次处理，连击加成按顺序累加。
// 刷新最高分时在返回前同步写入 HighScoreStore。
type HitResolverSystem struct {
	entityManager *ecs.EntityManager
	sprites       entities.SpriteSource
	gameState     *game.GameState
	config        *config.GameConfig
	rng           *rand.Rand
	store         game.HighScoreStore
	starter       RoundStarter
	sounds        game.SoundPlayer
	listener      RoundListener
}

// NewHitResolverSystem 创建命中处理系统
//
// 参数:
//   - em: EntityManager 实例
//   - sprites: 贴图来源，可为 nil
//   - gs: 游戏状态
//   - cfg: 玩法配置（特效参数）
//   - rng: 随机数源（弹孔旋转角度）
//   - store: 最高分存储
//   - starter: 回合启动器
func NewHitResolverSystem(em *ecs.EntityManager, sprites entities.SpriteSource, gs *game.GameState, cfg *config.GameConfig, rng *rand.Rand, store game.HighScoreStore, starter RoundStarter) *HitResolverSystem {
	return &HitResolverSystem{
		entityManager: em,
		sprites:       sprites,
		gameState:     gs,
		config:        cfg,
		rng:           rng,
		store:         store,
		starter:       starter,
	}
}

// SetSoundPlayer 设置音效播放器（可为 nil）
func (s *HitResolverSystem) SetSoundPlayer(sp game.SoundPlayer) {
	s.sounds = sp
}

// SetListener 设置计分事件监听器（可为 nil）
func (s *HitResolverSystem) SetListener(l RoundListener) {
	s.listener = l
}

// HandleTap 处理一次点击（场地坐标）
// 必须在下一次点击或节拍之前完整执行，包括最高分的写入
func (s *HitResolverSystem) HandleTap(x, y float64) TapOutcome {
	var outcome TapOutcome

	// 1. 弹孔反馈，与是否命中、是否在回合中无关
	rotation := s.rng.Float64() * s.config.Effects.ImpactMaxRotation
	impactID, err := entities.NewImpactEffect(s.entityManager, s.sprites, x, y, rotation, s.config.Effects.ImpactDuration)
	if err != nil {
		log.Printf("[HitResolverSystem] Warning: Failed to create impact effect: %v", err)
	}
	outcome.ImpactID = impactID

	// 2. 未开始：只响应开始按钮
	if !s.gameState.IsRunning() {
		if s.isStartButtonHit(x, y) && s.starter != nil {
			outcome.Started = s.starter.Start()
		}
		return outcome
	}

	// 3. 回合中：处理所有被点中的靶子
	foundHit := false
	for _, id := range s.findEnemiesAt(x, y) {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)

		if !enemy.Recognized {
			change := s.gameState.ApplyUnrecognized()
			log.Printf("[HitResolverSystem] Unrecognized tag %q at (%.0f, %.0f), streak reset", enemy.Tag, x, y)
			outcome.Changes = append(outcome.Changes, change)
			s.notify(change)
			continue
		}

		enemy.IsHit = true
		if err := entities.StartRemovalEffect(s.entityManager, id, s.config.Effects.RemovalDuration, s.config.Effects.RemovalScaleY); err != nil {
			log.Printf("[HitResolverSystem] Warning: Failed to start removal of entity %d: %v", id, err)
			s.entityManager.DestroyEntity(id)
		}

		change := s.gameState.ApplyHit(enemy.Kind)
		foundHit = true
		outcome.Hits = append(outcome.Hits, id)
		outcome.Changes = append(outcome.Changes, change)
		s.applyScoreChange(change)
	}

	// 4. 没有任何有效命中：连击清零
	if !foundHit {
		change := s.gameState.ApplyMiss()
		outcome.Miss = true
		outcome.Changes = append(outcome.Changes, change)
		s.notify(change)
	}

	return outcome
}

// findEnemiesAt 返回包含点击位置、仍可点击的靶子（按实体ID升序）
func (s *HitResolverSystem) findEnemiesAt(x, y float64) []ecs.EntityID {
	candidates := ecs.GetEntitiesWith3[
		*components.PositionComponent,
		*components.ClickableComponent,
		*components.EnemyComponent,
	](s.entityManager)

	hits := make([]ecs.EntityID, 0, 2)
	for _, id := range candidates {
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		clickable, _ := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)

		// 已被击中的靶子不能再次计分
		if !clickable.IsEnabled || enemy.IsHit {
			continue
		}
		if clickable.Contains(pos.X, pos.Y, x, y) {
			hits = append(hits, id)
		}
	}
	return hits
}

// isStartButtonHit 检查是否点中了可见的开始按钮
func (s *HitResolverSystem) isStartButtonHit(x, y float64) bool {
	buttons := ecs.GetEntitiesWith4[
		*components.PositionComponent,
		*components.ClickableComponent,
		*components.UIComponent,
		*components.StartButtonComponent,
	](s.entityManager)

	for _, id := range buttons {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		clickable, _ := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)
		ui, _ := ecs.GetComponent[*components.UIComponent](s.entityManager, id)

		if ui.State == components.UIHidden || !clickable.IsEnabled {
			continue
		}
		if clickable.Contains(pos.X, pos.Y, x, y) {
			return true
		}
	}
	return false
}

// applyScoreChange 对一次有效命中做出反应：持久化最高分、播放音效、通知监听器
func (s *HitResolverSystem) applyScoreChange(change game.ScoreChange) {
	if change.NewHighScore && s.store != nil {
		if err := s.store.Set(change.HighScore); err != nil {
			log.Printf("[HitResolverSystem] Warning: Failed to persist high score %d: %v", change.HighScore, err)
		}
	}

	if s.sounds != nil {
		if change.Kind == types.EnemyBomb {
			s.sounds.PlaySound(game.SoundBomb)
		} else {
			s.sounds.PlaySound(game.SoundHit)
		}
	}

	s.notify(change)
}

func (s *HitResolverSystem) notify(change game.ScoreChange) {
	if s.listener != nil {
		s.listener.OnScoreChange(change)
	}
}
