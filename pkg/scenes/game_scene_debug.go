package scenes

import (
	"fmt"
	"image/color"

	"github.com/gonewx/carnival/pkg/components"
	"github.com/gonewx/carnival/pkg/config"
	"github.com/gonewx/carnival/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawDebugOverlay 绘制点击判定框和运行统计（F3 切换）
func (s *GameScene) drawDebugOverlay(screen *ebiten.Image) {
	boxColor := color.RGBA{R: 255, G: 255, B: 0, A: 160}   // 可点击：黄色
	hitColor := color.RGBA{R: 255, G: 0, B: 0, A: 160}     // 已命中：红色
	buttonColor := color.RGBA{R: 0, G: 255, B: 255, A: 160} // 按钮：青色

	clickables := ecs.GetEntitiesWith2[
		*components.PositionComponent,
		*components.ClickableComponent,
	](s.entityManager)

	for _, id := range clickables {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		clickable, _ := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)

		clr := boxColor
		if !clickable.IsEnabled {
			clr = hitColor
		}
		if ui, ok := ecs.GetComponent[*components.UIComponent](s.entityManager, id); ok {
			if ui.State == components.UIHidden {
				continue
			}
			clr = buttonColor
		}

		// 场地坐标的上边缘对应屏幕坐标的上边缘
		left := pos.X - clickable.Width/2
		top := config.FieldToScreenY(pos.Y + clickable.Height/2)
		vector.StrokeRect(screen, float32(left), float32(top),
			float32(clickable.Width), float32(clickable.Height), 2, clr, false)
	}

	stats := fmt.Sprintf("TPS: %.0f\nEntities: %d\nCulled: %d\nTaps: %d\nPhase: %s\nHits: %d (bombs %d)\nMisses: %d\nBest streak: %d",
		ebiten.ActualTPS(),
		s.entityManager.EntityCount(),
		s.boundarySweep.TotalCulled(),
		s.inputSystem.TapCount(),
		s.gameState.Phase,
		s.roundStats.Hits,
		s.roundStats.Bombs,
		s.roundStats.Misses,
		s.roundStats.BestStreak,
	)
	ebitenutil.DebugPrintAt(screen, stats, 10, 100)
}
