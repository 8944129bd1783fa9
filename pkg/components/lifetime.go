package components

// LifetimeComponent 管理实体的生命周期
// 用于自动清理存在时间超过上限的实体(如弹孔、命中后的消失动画)
type LifetimeComponent struct {
	MaxLifetime     float64 // 最大生命周期(秒)
	CurrentLifetime float64 // 当前已存在时间(秒)
	IsExpired       bool    // 是否已过期
}

// Progress 返回生命周期进度（0.0 ~ 1.0）
func (l *LifetimeComponent) Progress() float64 {
	if l.MaxLifetime <= 0 {
		return 1.0
	}
	p := l.CurrentLifetime / l.MaxLifetime
	if p > 1.0 {
		return 1.0
	}
	return p
}
