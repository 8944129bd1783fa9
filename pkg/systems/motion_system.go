package systems

import (
	"github.com/gonewx/carnival/pkg/components"
	"github.com/gonewx/carnival/pkg/ecs"
)

// MotionSystem 推进所有实体的动作
//
// 每帧累加 MotionComponent.Elapsed，用 Profile.Evaluate 计算姿态后
// 写回 PositionComponent 和 RotationComponent。
// 一次性平移结束且标记了 RemoveOnFinish 的实体在此处删除
type MotionSystem struct {
	entityManager *ecs.EntityManager
}

// NewMotionSystem 创建动作系统
func NewMotionSystem(em *ecs.EntityManager) *MotionSystem {
	return &MotionSystem{
		entityManager: em,
	}
}

// Update 推进动作
func (s *MotionSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[
		*components.PositionComponent,
		*components.MotionComponent,
	](s.entityManager)

	for _, id := range entities {
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}

		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		mc, _ := ecs.GetComponent[*components.MotionComponent](s.entityManager, id)

		mc.Elapsed += deltaTime
		pose := mc.Profile.Evaluate(mc.Origin, mc.Elapsed)

		pos.X = pose.X
		pos.Y = pose.Y
		if rot, ok := ecs.GetComponent[*components.RotationComponent](s.entityManager, id); ok {
			rot.Angle = pose.Rotation
		}

		if pose.Finished && mc.RemoveOnFinish {
			s.entityManager.DestroyEntity(id)
		}
	}
}
