package entities

import (
	"fmt"

	"github.com/gonewx/carnival/pkg/components"
	"github.com/gonewx/carnival/pkg/ecs"
	"github.com/gonewx/carnival/pkg/game"
)

// NewImpactEffect 创建弹孔（blast）效果实体
// 每次点击都会生成，无论是否命中、是否在回合中；淡出后自动删除
//
// 参数:
//   - em: 实体管理器
//   - sprites: 贴图来源，可为 nil
//   - x, y: 点击位置（场地坐标）
//   - rotation: 旋转角度（弧度）
//   - duration: 淡出时长（秒）
//
// 返回:
//   - ecs.EntityID: 创建的效果实体ID
//   - error: 如果创建失败返回错误信息
func NewImpactEffect(em *ecs.EntityManager, sprites SpriteSource, x, y, rotation, duration float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if duration <= 0 {
		return 0, fmt.Errorf("impact duration must be > 0, got %v", duration)
	}

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entityID, &components.RotationComponent{Angle: rotation})
	ecs.AddComponent(em, entityID, &components.ScaleComponent{ScaleX: 1.0, ScaleY: 1.0})
	ecs.AddComponent(em, entityID, &components.AlphaComponent{Alpha: 1.0})

	// 计时器控制显示时长
	ecs.AddComponent(em, entityID, &components.LifetimeComponent{MaxLifetime: duration})
	ecs.AddComponent(em, entityID, &components.FadeComponent{StartScaleY: 1.0, EndScaleY: 1.0})

	addSprite(em, entityID, sprites, game.SpriteBlast, components.LayerImpact)

	return entityID, nil
}

// StartRemovalEffect 为被击中的靶子开始消失动画
// 禁止再次点击，纵向压扁到 endScaleY 并同时淡出，duration 秒后删除；
// 动作继续播放，靶子边移动边消失
//
// 返回:
//   - error: 实体不存在时返回错误
func StartRemovalEffect(em *ecs.EntityManager, id ecs.EntityID, duration, endScaleY float64) error {
	if em == nil || !em.EntityExists(id) {
		return fmt.Errorf("entity %d does not exist", id)
	}

	if clickable, ok := ecs.GetComponent[*components.ClickableComponent](em, id); ok {
		clickable.IsEnabled = false
	}
	if !ecs.HasComponent[*components.ScaleComponent](em, id) {
		ecs.AddComponent(em, id, &components.ScaleComponent{ScaleX: 1.0, ScaleY: 1.0})
	}
	if !ecs.HasComponent[*components.AlphaComponent](em, id) {
		ecs.AddComponent(em, id, &components.AlphaComponent{Alpha: 1.0})
	}

	ecs.AddComponent(em, id, &components.LifetimeComponent{MaxLifetime: duration})
	ecs.AddComponent(em, id, &components.FadeComponent{StartScaleY: 1.0, EndScaleY: endScaleY})

	return nil
}
