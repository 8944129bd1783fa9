// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Tap 一次点击/触摸（屏幕坐标）
type Tap struct {
	X, Y int
	// IsTouch 是否来自触摸屏
	IsTouch bool
}

// AppendJustPressedTaps 追加本帧所有刚按下的点击/触摸
// 多指触摸时每个触点都是一次独立点击，顺序与 ebiten 返回的触摸ID一致，鼠标点击排在最后
func AppendJustPressedTaps(taps []Tap) []Tap {
	var touchIDs []ebiten.TouchID
	touchIDs = inpututil.AppendJustPressedTouchIDs(touchIDs)
	for _, id := range touchIDs {
		x, y := ebiten.TouchPosition(id)
		taps = append(taps, Tap{X: x, Y: y, IsTouch: true})
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		taps = append(taps, Tap{X: x, Y: y})
	}

	return taps
}

// GetPointerPosition 获取当前指针位置（触摸或鼠标）
// 优先返回触摸位置，如果没有触摸则返回鼠标位置
func GetPointerPosition() (int, int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		return ebiten.TouchPosition(touchIDs[0])
	}

	return ebiten.CursorPosition()
}
