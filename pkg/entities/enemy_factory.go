package entities

import (
	"fmt"

	"github.com/gonewx/carnival/pkg/components"
	"github.com/gonewx/carnival/pkg/config"
	"github.com/gonewx/carnival/pkg/ecs"
	"github.com/gonewx/carnival/pkg/motion"
	"github.com/gonewx/carnival/pkg/types"
)

// EnemySpawn 描述一次靶子生成
type EnemySpawn struct {
	Tag     string            // 实体标签，同时是贴图名
	Source  types.SpawnSource // 航道或掉落
	X, Y    float64           // 出生位置（场地坐标）
	Profile motion.Profile    // 动作描述
	HitBox  config.HitBox     // 点击判定框
}

// NewEnemyEntity 创建一个靶子实体
//
// 靶子由 MotionSystem 驱动移动，离开场地后由 BoundarySweepSystem 剔除，
// 被点中后由 HitResolverSystem 计分并播放消失动画。
// 一次性平移（第一、二行和掉落物）到达终点后直接移除。
//
// 参数:
//   - em: 实体管理器
//   - sprites: 贴图来源，可为 nil
//   - spawn: 生成参数
//
// 返回:
//   - ecs.EntityID: 创建的靶子实体ID
//   - error: 参数无效时返回错误
func NewEnemyEntity(em *ecs.EntityManager, sprites SpriteSource, spawn EnemySpawn) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if spawn.Tag == "" {
		return 0, fmt.Errorf("enemy tag cannot be empty")
	}

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{
		X: spawn.X,
		Y: spawn.Y,
	})
	ecs.AddComponent(em, entityID, &components.RotationComponent{})
	ecs.AddComponent(em, entityID, &components.ScaleComponent{ScaleX: 1.0, ScaleY: 1.0})
	ecs.AddComponent(em, entityID, &components.AlphaComponent{Alpha: 1.0})

	ecs.AddComponent(em, entityID, components.NewEnemyComponent(spawn.Tag, spawn.Source))
	ecs.AddComponent(em, entityID, &components.ClickableComponent{
		Width:     spawn.HitBox.Width,
		Height:    spawn.HitBox.Height,
		IsEnabled: true,
	})
	ecs.AddComponent(em, entityID, &components.MotionComponent{
		Profile:        spawn.Profile,
		Origin:         motion.Point{X: spawn.X, Y: spawn.Y},
		RemoveOnFinish: spawn.Profile.IsOneShot(),
	})
	ecs.AddComponent(em, entityID, &components.CullableComponent{})

	layer := components.LayerEnemy
	if spawn.Source == types.SourceDrop {
		layer = components.LayerDrop
	}
	addSprite(em, entityID, sprites, spawn.Tag, layer)

	return entityID, nil
}
