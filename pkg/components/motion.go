package components

import "github.com/gonewx/carnival/pkg/motion"

// MotionComponent 将不可变的动作描述挂到实体上
//
// Profile 只描述动作本身；进度 Elapsed 由 MotionSystem 每帧推进，
// 位置由 Profile.Evaluate(Origin, Elapsed) 计算后写回 PositionComponent
type MotionComponent struct {
	Profile motion.Profile
	Origin  motion.Point // 生成时的位置
	Elapsed float64      // 已播放时间（秒）

	// RemoveOnFinish 一次性平移结束后移除实体
	// 平移终点恰好落在剔除阈值上时，严格比较不会触发边界剔除
	RemoveOnFinish bool
}
