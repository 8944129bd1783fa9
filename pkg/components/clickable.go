package components

// ClickableComponent 标记实体可以被点击/触摸命中
// 命中区域以实体位置为中心，尺寸为 Width x Height（场地坐标）
type ClickableComponent struct {
	Width     float64 // 可点击区域的宽度(像素)
	Height    float64 // 可点击区域的高度(像素)
	IsEnabled bool    // 是否可以被点击(命中后立即禁用，防止同一靶子重复计分)
}

// Contains 检查场地坐标 (x, y) 是否落在以 (centerX, centerY) 为中心的命中区域内
func (c *ClickableComponent) Contains(centerX, centerY, x, y float64) bool {
	halfWidth := c.Width / 2.0
	halfHeight := c.Height / 2.0
	return x >= centerX-halfWidth && x <= centerX+halfWidth &&
		y >= centerY-halfHeight && y <= centerY+halfHeight
}
