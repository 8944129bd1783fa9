package utils

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// MeasureText 测量文本在指定缩放下的宽高（像素）
func MeasureText(textStr string, face text.Face, scale float64) (float64, float64) {
	if textStr == "" || face == nil {
		return 0, 0
	}
	w, h := text.Measure(textStr, face, 0)
	return w * scale, h * scale
}

// DrawText 以左上角 (x, y) 绘制文本
func DrawText(screen *ebiten.Image, textStr string, face text.Face, x, y, scale float64, clr color.Color) {
	if textStr == "" || face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, textStr, face, op)
}
