package components

// ScaleComponent 存储实体级别的缩放因子
// 用于在渲染时对整个实体进行缩放（如靶子被击中时的纵向压扁）
type ScaleComponent struct {
	// ScaleX X轴缩放因子（1.0 = 原始大小）
	ScaleX float64

	// ScaleY Y轴缩放因子（1.0 = 原始大小，0.25 = 压扁到 25%）
	ScaleY float64
}
