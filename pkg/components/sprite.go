package components

import "github.com/hajimehoshi/ebiten/v2"

// 渲染层级（数值小的先绘制）
const (
	LayerBackground = -2
	LayerWave       = 1
	LayerShelf      = 2
	LayerEnemy      = 0
	LayerDrop       = 3
	LayerImpact     = 4
)

// SpriteComponent 存储实体的视觉表现(当前绘制的图像)
// 图像以实体位置为中心绘制
type SpriteComponent struct {
	Image *ebiten.Image
	Layer int
}
