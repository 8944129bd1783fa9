// Package motion 定义靶子的动作描述（Profile）及其求值
//
// Profile 是不可变的数据：它只描述"怎么动"，不持有任何进度状态。
// 进度（已播放时间）保存在实体的 MotionComponent 中，由 MotionSystem 推进，
// 每帧调用 Evaluate(origin, elapsed) 得到当前姿态。
// 因为求值是纯函数，计分、生成、剔除逻辑可以在没有渲染器的情况下测试。
package motion

import "math"

// Axis 平移轴
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// RotationMode 旋转方式
type RotationMode int

const (
	RotationNone   RotationMode = iota
	RotationSpin                // 匀速旋转
	RotationBounce              // 摇摆：+A, -A, -A, +A 循环
)

// Point 场地坐标中的一个点
type Point struct {
	X, Y float64
}

// Translate 平移到指定坐标（只改变一个轴）
type Translate struct {
	Axis     Axis
	Target   float64 // 目标坐标
	Duration float64 // 时长（秒）
}

// Rotation 旋转参数
type Rotation struct {
	Mode  RotationMode
	Speed float64 // RotationSpin：弧度/秒
	Angle float64 // RotationBounce：单步旋转角度（弧度）
	Step  float64 // RotationBounce：单步时长（秒）
}

// Step 相对位移的一步，DX/DY 均为 0 时表示等待
type Step struct {
	DX, DY   float64
	Duration float64
}

// Profile 动作描述
// 平移、旋转、循环步骤三者可以任意组合，同时生效
type Profile struct {
	Name      string
	Translate *Translate
	Rotation  Rotation
	Steps     []Step // 无限循环的相对位移序列
}

// Pose 某一时刻的姿态
type Pose struct {
	X, Y     float64
	Rotation float64 // 弧度，逆时针为正
	Finished bool    // 平移已完成且没有循环位移
}

// Evaluate 计算从 origin 出发、经过 elapsed 秒后的姿态
func (p Profile) Evaluate(origin Point, elapsed float64) Pose {
	if elapsed < 0 {
		elapsed = 0
	}

	pose := Pose{X: origin.X, Y: origin.Y}

	if p.Translate != nil {
		progress := 1.0
		if p.Translate.Duration > 0 {
			progress = math.Min(elapsed/p.Translate.Duration, 1.0)
		}
		switch p.Translate.Axis {
		case AxisX:
			pose.X = origin.X + (p.Translate.Target-origin.X)*progress
		case AxisY:
			pose.Y = origin.Y + (p.Translate.Target-origin.Y)*progress
		}
		pose.Finished = progress >= 1.0 && !p.hasStepMovement()
	}

	if len(p.Steps) > 0 {
		dx, dy := evaluateSteps(p.Steps, elapsed)
		pose.X += dx
		pose.Y += dy
	}

	pose.Rotation = p.Rotation.angleAt(elapsed)
	return pose
}

// IsOneShot 平移结束后是否不再有任何位移
func (p Profile) IsOneShot() bool {
	return p.Translate != nil && !p.hasStepMovement()
}

// CycleDuration 循环步骤一轮的时长
func (p Profile) CycleDuration() float64 {
	total := 0.0
	for _, s := range p.Steps {
		total += s.Duration
	}
	return total
}

func (p Profile) hasStepMovement() bool {
	for _, s := range p.Steps {
		if s.DX != 0 || s.DY != 0 {
			return true
		}
	}
	return false
}

// evaluateSteps 计算循环步骤在 elapsed 时刻累计的位移
func evaluateSteps(steps []Step, elapsed float64) (float64, float64) {
	cycle := 0.0
	cycleDX, cycleDY := 0.0, 0.0
	for _, s := range steps {
		cycle += s.Duration
		cycleDX += s.DX
		cycleDY += s.DY
	}
	if cycle <= 0 {
		return 0, 0
	}

	completed := math.Floor(elapsed / cycle)
	dx := completed * cycleDX
	dy := completed * cycleDY
	remaining := elapsed - completed*cycle

	for _, s := range steps {
		if remaining <= 0 {
			break
		}
		if remaining >= s.Duration {
			dx += s.DX
			dy += s.DY
			remaining -= s.Duration
			continue
		}
		frac := remaining / s.Duration
		dx += s.DX * frac
		dy += s.DY * frac
		remaining = 0
	}

	return dx, dy
}

// angleAt 计算 elapsed 时刻的旋转角度
func (r Rotation) angleAt(elapsed float64) float64 {
	switch r.Mode {
	case RotationSpin:
		return r.Speed * elapsed
	case RotationBounce:
		if r.Step <= 0 {
			return 0
		}
		// 四步一轮：0→A→0→-A→0
		period := 4 * r.Step
		phase := math.Mod(elapsed, period)
		stepIndex := int(phase / r.Step)
		frac := (phase - float64(stepIndex)*r.Step) / r.Step
		switch stepIndex {
		case 0:
			return r.Angle * frac
		case 1:
			return r.Angle * (1 - frac)
		case 2:
			return -r.Angle * frac
		default:
			return -r.Angle * (1 - frac)
		}
	default:
		return 0
	}
}
