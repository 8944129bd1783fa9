// Package entities 提供实体工厂函数
//
// 工厂只负责组装组件；移动、剔除、计分等行为由 systems 包中的系统完成。
package entities

import (
	"github.com/gonewx/carnival/pkg/components"
	"github.com/gonewx/carnival/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteSource 按名称提供贴图
// 生产代码中由 game.ResourceManager 实现；传 nil 时实体不带 SpriteComponent（无界面模拟、测试）
type SpriteSource interface {
	GetSprite(name string) *ebiten.Image
}

// addSprite 在 sprites 可用时为实体添加贴图
func addSprite(em *ecs.EntityManager, id ecs.EntityID, sprites SpriteSource, name string, layer int) {
	if sprites == nil {
		return
	}
	img := sprites.GetSprite(name)
	if img == nil {
		return
	}
	ecs.AddComponent(em, id, &components.SpriteComponent{
		Image: img,
		Layer: layer,
	})
}
