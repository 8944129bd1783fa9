package components

// PositionComponent 存储实体在场地坐标系中的位置
// 场地坐标原点在左下角，Y 轴向上（渲染时再翻转为屏幕坐标）
type PositionComponent struct {
	X float64
	Y float64
}

// RotationComponent 存储实体的旋转角度（弧度，逆时针为正）
type RotationComponent struct {
	Angle float64
}
