package systems

import (
	"log"

	"github.com/gonewx/carnival/pkg/components"
	"github.com/gonewx/carnival/pkg/config"
	"github.com/gonewx/carnival/pkg/ecs"
	"github.com/gonewx/carnival/pkg/utils"
)

// TapHandler 处理一次场地坐标下的点击（由 HitResolverSystem 实现）
type TapHandler interface {
	HandleTap(x, y float64) TapOutcome
}

// InputSystem 将鼠标点击和触摸按下转换为点击事件
//
// 每个物理按下只产生一次点击；多指同时按下时每个触点各算一次。
// 屏幕坐标（Y 向下）在此处转换为场地坐标（Y 向上）
type InputSystem struct {
	entityManager *ecs.EntityManager
	handler       TapHandler
	taps          []utils.Tap // 复用的缓冲区，避免每帧分配
	tapCount      int
	trackHover    bool
}

// NewInputSystem 创建输入系统
func NewInputSystem(em *ecs.EntityManager, handler TapHandler) *InputSystem {
	return &InputSystem{
		entityManager: em,
		handler:       handler,
		taps:          make([]utils.Tap, 0, 4),
		// 触摸设备没有悬停
		trackHover: !utils.IsMobile(),
	}
}

// ScreenToField 屏幕坐标转换为场地坐标
func ScreenToField(screenX, screenY int) (float64, float64) {
	return float64(screenX), config.ScreenToFieldY(float64(screenY))
}

// Update 读取本帧输入并分发点击
func (s *InputSystem) Update(deltaTime float64) {
	s.taps = utils.AppendJustPressedTaps(s.taps[:0])
	for _, tap := range s.taps {
		s.DispatchTap(tap.X, tap.Y)
	}

	if s.trackHover {
		s.updateHover(utils.GetPointerPosition())
	}
}

// DispatchTap 处理一次屏幕坐标下的点击
func (s *InputSystem) DispatchTap(screenX, screenY int) TapOutcome {
	x, y := ScreenToField(screenX, screenY)
	s.tapCount++

	outcome := s.handler.HandleTap(x, y)
	if len(outcome.Hits) > 0 {
		log.Printf("[InputSystem] Tap #%d at screen (%d, %d) hit %d target(s)", s.tapCount, screenX, screenY, len(outcome.Hits))
	}
	return outcome
}

// TapCount 已处理的点击次数
func (s *InputSystem) TapCount() int {
	return s.tapCount
}

// updateHover 更新开始按钮的悬停状态（用于高亮）
func (s *InputSystem) updateHover(screenX, screenY int) {
	x, y := ScreenToField(screenX, screenY)

	buttons := ecs.GetEntitiesWith3[
		*components.PositionComponent,
		*components.ClickableComponent,
		*components.UIComponent,
	](s.entityManager)

	for _, id := range buttons {
		ui, _ := ecs.GetComponent[*components.UIComponent](s.entityManager, id)
		if ui.State == components.UIHidden {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		clickable, _ := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)

		if clickable.Contains(pos.X, pos.Y, x, y) {
			ui.State = components.UIHovered
		} else {
			ui.State = components.UINormal
		}
	}
}
