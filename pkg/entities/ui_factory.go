package entities

import (
	"fmt"
	"log"

	"github.com/gonewx/carnival/pkg/components"
	"github.com/gonewx/carnival/pkg/ecs"
)

// NewStartButtonEntity 创建"开始游戏"按钮实体
// 按钮没有贴图，文字由 HUDSystem 绘制；点击区域由 ClickableComponent 描述
//
// 参数：
//   - em: 实体管理器
//   - x, y: 按钮中心（场地坐标）
//   - width, height: 可点击区域尺寸
//   - label: 按钮文字
//
// 返回：
//   - ecs.EntityID: 按钮实体ID
//   - error: 参数无效时返回错误
func NewStartButtonEntity(em *ecs.EntityManager, x, y, width, height float64, label string) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("start button must have positive size, got %.0fx%.0f", width, height)
	}

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entityID, &components.ClickableComponent{
		Width:     width,
		Height:    height,
		IsEnabled: true,
	})
	ecs.AddComponent(em, entityID, &components.UIComponent{State: components.UINormal})
	ecs.AddComponent(em, entityID, &components.StartButtonComponent{Label: label})

	log.Printf("[UI Factory] Start button created: entity=%d, center=(%.0f, %.0f)", entityID, x, y)
	return entityID, nil
}
