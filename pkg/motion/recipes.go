package motion

// 预置动作配方
// 每条航道、掉落物和装饰水波各对应一个构造函数

// BounceTranslate 边摇摆边水平平移到 targetX（第一行）
func BounceTranslate(targetX, duration, angle, step float64) Profile {
	return Profile{
		Name:      "bounce-translate",
		Translate: &Translate{Axis: AxisX, Target: targetX, Duration: duration},
		Rotation:  Rotation{Mode: RotationBounce, Angle: angle, Step: step},
	}
}

// RotateTranslate 边匀速旋转边水平平移到 targetX（第二行）
func RotateTranslate(targetX, duration, speed float64) Profile {
	return Profile{
		Name:      "rotate-translate",
		Translate: &Translate{Axis: AxisX, Target: targetX, Duration: duration},
		Rotation:  Rotation{Mode: RotationSpin, Speed: speed},
	}
}

// HopSequence 前进-停顿-起跳-落地，无限循环（第三行）
func HopSequence(distance, height, step float64) Profile {
	return Profile{
		Name: "hop-sequence",
		Steps: []Step{
			{DX: distance, Duration: step},
			{Duration: step},
			{DY: height, Duration: step},
			{DY: -height, Duration: step},
		},
	}
}

// BounceFall 边摇摆边垂直下落到 targetY（随机掉落）
func BounceFall(targetY, duration, angle, step float64) Profile {
	return Profile{
		Name:      "bounce-fall",
		Translate: &Translate{Axis: AxisY, Target: targetY, Duration: duration},
		Rotation:  Rotation{Mode: RotationBounce, Angle: angle, Step: step},
	}
}

// Sway 装饰水波的来回晃动
// mirrored=false: (+dx,+dy) (+dx,-dy) (-2dx,0)
// mirrored=true:  (-dx,+dy) (-dx,-dy) (+2dx,0)
func Sway(dx, dy, step float64, mirrored bool) Profile {
	if mirrored {
		dx = -dx
	}
	return Profile{
		Name: "sway",
		Steps: []Step{
			{DX: dx, DY: dy, Duration: step},
			{DX: dx, DY: -dy, Duration: step},
			{DX: -2 * dx, Duration: step},
		},
	}
}
