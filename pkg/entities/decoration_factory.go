package entities

import (
	"github.com/gonewx/carnival/pkg/components"
	"github.com/gonewx/carnival/pkg/config"
	"github.com/gonewx/carnival/pkg/ecs"
	"github.com/gonewx/carnival/pkg/game"
	"github.com/gonewx/carnival/pkg/motion"
)

// NewWaveDecorations 在三条航道下方铺设晃动的水波
// 水波从场地左边界开始每隔 WaveSpacing 放一个，直到右边界；
// 第二行使用向左的贴图并反向晃动。水波不可点击，也不会被剔除
//
// 返回:
//   - []ecs.EntityID: 创建的水波实体
func NewWaveDecorations(em *ecs.EntityManager, sprites SpriteSource, bounds config.BoundsConfig, lanes config.LanesConfig) []ecs.EntityID {
	right := motion.Sway(config.WaveSwayDX, config.WaveSwayDY, config.WaveSwayStep, false)
	left := motion.Sway(config.WaveSwayDX, config.WaveSwayDYMirrored, config.WaveSwayStep, true)

	rows := []struct {
		y       float64
		sprite  string
		profile motion.Profile
	}{
		{lanes.Row1 - config.WaveOffsetBelow, game.SpriteWaveRight, right},
		{lanes.Row2 - config.WaveOffsetBelow, game.SpriteWaveLeft, left},
		{lanes.Row3 - config.WaveOffsetBelow, game.SpriteWaveRight, right},
	}

	var ids []ecs.EntityID
	for x := bounds.Bottom; x <= bounds.Right; x += config.WaveSpacing {
		for _, row := range rows {
			id := em.CreateEntity()
			ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: row.y})
			ecs.AddComponent(em, id, &components.MotionComponent{
				Profile: row.profile,
				Origin:  motion.Point{X: x, Y: row.y},
			})
			addSprite(em, id, sprites, row.sprite, components.LayerWave)
			ids = append(ids, id)
		}
	}

	return ids
}

// NewShelfDecorations 在每条航道下方放一块横跨整个窗口的货架
func NewShelfDecorations(em *ecs.EntityManager, sprites SpriteSource, lanes config.LanesConfig, width float64) []ecs.EntityID {
	ids := make([]ecs.EntityID, 0, 3)
	for _, rowY := range []float64{lanes.Row1, lanes.Row2, lanes.Row3} {
		id := em.CreateEntity()
		ecs.AddComponent(em, id, &components.PositionComponent{
			X: width / 2,
			Y: rowY - config.ShelfOffsetBelow,
		})
		addSprite(em, id, sprites, game.SpriteShelf, components.LayerShelf)
		ids = append(ids, id)
	}
	return ids
}

// NewBackgroundEntity 创建铺满窗口的背景
// 背景中心位于窗口中心，绘制在最底层
func NewBackgroundEntity(em *ecs.EntityManager, sprites SpriteSource, width, height float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: width / 2, Y: height / 2})
	addSprite(em, id, sprites, game.SpriteBackground, components.LayerBackground)
	return id
}
