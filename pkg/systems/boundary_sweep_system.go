package systems

import (
	"github.com/gonewx/carnival/pkg/components"
	"github.com/gonewx/carnival/pkg/config"
	"github.com/gonewx/carnival/pkg/ecs"
)

// BoundarySweepSystem 每帧剔除离开场地的实体
// 只处理带 CullableComponent 的实体，不播放任何动画
type BoundarySweepSystem struct {
	entityManager *ecs.EntityManager
	bounds        config.BoundsConfig
	totalCulled   int
}

// NewBoundarySweepSystem 创建边界剔除系统
func NewBoundarySweepSystem(em *ecs.EntityManager, bounds config.BoundsConfig) *BoundarySweepSystem {
	return &BoundarySweepSystem{
		entityManager: em,
		bounds:        bounds,
	}
}

// IsOutOfBounds 判断位置是否超出剔除阈值
// 比较是严格的：恰好落在阈值上的实体仍在场内
func IsOutOfBounds(b config.BoundsConfig, x, y float64) bool {
	return x < b.BottomOver || x > b.RightOver || y < b.BottomOver || y > b.TopOver
}

// Update 剔除越界实体
//
// 返回:
//   - int: 本帧剔除的实体数量
func (s *BoundarySweepSystem) Update() int {
	entities := ecs.GetEntitiesWith2[
		*components.PositionComponent,
		*components.CullableComponent,
	](s.entityManager)

	culled := 0
	for _, id := range entities {
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if IsOutOfBounds(s.bounds, pos.X, pos.Y) {
			s.entityManager.DestroyEntity(id)
			culled++
		}
	}

	s.totalCulled += culled
	return culled
}

// TotalCulled 累计剔除数量
func (s *BoundarySweepSystem) TotalCulled() int {
	return s.totalCulled
}
