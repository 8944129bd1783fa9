package config

// 布局配置常量
// 本文件定义了窗口尺寸和 HUD 文字位置
//
// 坐标系说明：
//   - 场地坐标（play-field）：原点在左下角，Y 轴向上，与靶场规则中的边界、航道一致
//   - 屏幕坐标：原点在左上角，Y 轴向下，仅在渲染和输入换算时使用
//   - 换算：screenY = GameWindowHeight - fieldY，X 轴不变

const (
	// GameWindowWidth 逻辑屏幕宽度（像素）
	GameWindowWidth = 1024

	// GameWindowHeight 逻辑屏幕高度（像素）
	GameWindowHeight = 768

	// GameWindowTitle 窗口标题
	GameWindowTitle = "Carnival Shooter"
)

// HUD 文字位置（场地坐标，基线位置）
const (
	// TitleLabelY 标题距离顶部 100 像素
	TitleLabelY = GameWindowHeight - 100.0

	// StartLabelY 开始按钮在屏幕中线下方 175 像素
	StartLabelY = GameWindowHeight/2 - 175.0

	// ScoreLabelX / ScoreLabelY 分数左对齐于左上角
	ScoreLabelX = 50.0
	ScoreLabelY = GameWindowHeight - 50.0

	// StreakLabelY 连击显示在分数下方
	StreakLabelY = GameWindowHeight - 100.0

	// HighScoreLabelX 最高分右对齐于右上角
	HighScoreLabelX = GameWindowWidth - 50.0

	// TimeLabelY 剩余时间居中显示
	TimeLabelY = GameWindowHeight - 50.0

	// StartButtonWidth / StartButtonHeight 开始按钮的可点击区域
	StartButtonWidth  = 360.0
	StartButtonHeight = 90.0

	// HUDTextScale 基础位图字体的放大倍数
	HUDTextScale      = 3.0
	TitleTextScale    = 6.0
	StartTextScale    = 4.0
	ShelfHeight       = 30.0
	ShelfOffsetBelow  = 90.0 // 货架位于航道下方 90 像素
	WaveOffsetBelow   = 60.0 // 水波位于航道下方 60 像素
	WaveSpacing       = 95.0 // 水波水平间距
)

// 水波晃动参数
// 第一、三行向右晃，第二行向左晃且幅度更大
const (
	WaveSwayDX         = 16.0
	WaveSwayDY         = 25.0
	WaveSwayDYMirrored = 32.0
	WaveSwayStep       = 0.5
)

// FieldToScreenY 将场地坐标 Y 转换为屏幕坐标 Y
func FieldToScreenY(fieldY float64) float64 {
	return GameWindowHeight - fieldY
}

// ScreenToFieldY 将屏幕坐标 Y 转换为场地坐标 Y
func ScreenToFieldY(screenY float64) float64 {
	return GameWindowHeight - screenY
}
