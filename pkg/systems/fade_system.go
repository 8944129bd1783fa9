package systems

import (
	"github.com/gonewx/carnival/pkg/components"
	"github.com/gonewx/carnival/pkg/ecs"
	"github.com/gonewx/carnival/pkg/utils"
)

// FadeSystem 根据生命周期进度更新透明度和纵向缩放
// 进度 0 → 1 时 Alpha 从 1 线性降到 0，ScaleY 从 StartScaleY 过渡到 EndScaleY
type FadeSystem struct {
	entityManager *ecs.EntityManager
}

// NewFadeSystem 创建淡出系统
func NewFadeSystem(em *ecs.EntityManager) *FadeSystem {
	return &FadeSystem{
		entityManager: em,
	}
}

// Update 更新淡出效果
func (s *FadeSystem) Update() {
	entities := ecs.GetEntitiesWith2[
		*components.FadeComponent,
		*components.LifetimeComponent,
	](s.entityManager)

	for _, id := range entities {
		fade, _ := ecs.GetComponent[*components.FadeComponent](s.entityManager, id)
		lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)

		p := utils.EaseLinear(utils.Clamp01(lifetime.Progress()))

		if alpha, ok := ecs.GetComponent[*components.AlphaComponent](s.entityManager, id); ok {
			alpha.Alpha = 1.0 - p
		}
		if scale, ok := ecs.GetComponent[*components.ScaleComponent](s.entityManager, id); ok {
			scale.ScaleY = utils.Lerp(fade.StartScaleY, fade.EndScaleY, p)
		}
	}
}
