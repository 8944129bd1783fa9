package components

// FadeComponent 淡出动画
// 进度取自同一实体上的 LifetimeComponent，结束时由 LifetimeSystem 删除实体
//
// 用途：
//   - 弹孔：只淡出（EndScaleY = 1）
//   - 命中的靶子：纵向压扁到 EndScaleY 并同时淡出
type FadeComponent struct {
	StartScaleY float64
	EndScaleY   float64
}

// AlphaComponent 存储实体的不透明度（0.0 ~ 1.0）
type AlphaComponent struct {
	Alpha float64
}
