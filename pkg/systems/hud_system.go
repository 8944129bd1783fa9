package systems

import (
	"fmt"
	"image/color"

	"github.com/gonewx/carnival/pkg/components"
	"github.com/gonewx/carnival/pkg/config"
	"github.com/gonewx/carnival/pkg/ecs"
	"github.com/gonewx/carnival/pkg/game"
	"github.com/gonewx/carnival/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// TextAlign 文字水平对齐方式
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// HUDLabel 一个 HUD 文字标签
// X/Y 为场地坐标，Y 是文字的垂直中心
type HUDLabel struct {
	Text    string
	X, Y    float64
	Align   TextAlign
	Scale   float64
	Visible bool
}

var (
	hudTextColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	hudHoverColor = color.RGBA{R: 255, G: 220, B: 60, A: 255}
	hudShadow     = color.RGBA{R: 0, G: 0, B: 0, A: 160}
)

// HUDSystem 显示分数、最高分、连击、剩余时间、标题和开始按钮
//
// 作为 RoundListener 接收计分和回合事件，只在值变化时重新格式化文字。
// 显示规则：
//   - 标题只在第一次开始之前显示
//   - 开始按钮在回合进行中隐藏
//   - 分数、最高分、时间在第一次开始后一直显示
//   - 连击数不超过 1 时隐藏
type HUDSystem struct {
	entityManager *ecs.EntityManager
	startButtonID ecs.EntityID

	Title     HUDLabel
	Start     HUDLabel
	Score     HUDLabel
	HighScore HUDLabel
	Streak    HUDLabel
	Time      HUDLabel
}

// NewHUDSystem 创建 HUD 系统
//
// 参数:
//   - em: EntityManager 实例
//   - gs: 游戏状态（读取初始最高分）
//   - startButtonID: 开始按钮实体，回合中隐藏它
func NewHUDSystem(em *ecs.EntityManager, gs *game.GameState, startButtonID ecs.EntityID) *HUDSystem {
	h := &HUDSystem{
		entityManager: em,
		startButtonID: startButtonID,
		Title: HUDLabel{
			Text: config.GameWindowTitle, X: config.GameWindowWidth / 2, Y: config.TitleLabelY,
			Align: AlignCenter, Scale: config.TitleTextScale, Visible: true,
		},
		Start: HUDLabel{
			Text: "Start Game", X: config.GameWindowWidth / 2, Y: config.StartLabelY,
			Align: AlignCenter, Scale: config.StartTextScale, Visible: true,
		},
		Score: HUDLabel{
			X: config.ScoreLabelX, Y: config.ScoreLabelY,
			Align: AlignLeft, Scale: config.HUDTextScale,
		},
		HighScore: HUDLabel{
			X: config.HighScoreLabelX, Y: config.ScoreLabelY,
			Align: AlignRight, Scale: config.HUDTextScale,
		},
		Streak: HUDLabel{
			X: config.ScoreLabelX, Y: config.StreakLabelY,
			Align: AlignLeft, Scale: config.HUDTextScale,
		},
		Time: HUDLabel{
			X: config.GameWindowWidth / 2, Y: config.TimeLabelY,
			Align: AlignCenter, Scale: config.HUDTextScale,
		},
	}

	h.setScore(gs.Score)
	h.setHighScore(gs.HighScore)
	h.setStreak(gs.Streak)
	h.setTime(gs.TimeRemaining)
	return h
}

// OnRoundStarted 实现 RoundListener
func (h *HUDSystem) OnRoundStarted(gs *game.GameState) {
	h.Title.Visible = false
	h.Start.Visible = false
	h.Score.Visible = true
	h.HighScore.Visible = true
	h.Time.Visible = true

	h.setScore(gs.Score)
	h.setHighScore(gs.HighScore)
	h.setStreak(gs.Streak)
	h.setTime(gs.TimeRemaining)
	h.setStartButtonState(components.UIHidden)
}

// OnTick 实现 RoundListener
func (h *HUDSystem) OnTick(result game.TickResult) {
	h.setTime(result.TimeRemaining)
}

// OnRoundEnded 实现 RoundListener
func (h *HUDSystem) OnRoundEnded(gs *game.GameState) {
	h.Start.Visible = true
	h.setTime(gs.TimeRemaining)
	h.setStartButtonState(components.UINormal)
}

// OnScoreChange 实现 RoundListener
func (h *HUDSystem) OnScoreChange(change game.ScoreChange) {
	h.setScore(change.Score)
	h.setHighScore(change.HighScore)
	h.setStreak(change.Streak)
}

// Labels 返回当前可见的标签
func (h *HUDSystem) Labels() []HUDLabel {
	all := []HUDLabel{h.Title, h.Start, h.Score, h.HighScore, h.Streak, h.Time}
	visible := make([]HUDLabel, 0, len(all))
	for _, l := range all {
		if l.Visible {
			visible = append(visible, l)
		}
	}
	return visible
}

// Draw 绘制可见标签
func (h *HUDSystem) Draw(screen *ebiten.Image, face text.Face) {
	if face == nil {
		return
	}

	startColor := hudTextColor
	if h.isStartButtonHovered() {
		startColor = hudHoverColor
	}

	items := []struct {
		label HUDLabel
		clr   color.Color
	}{
		{h.Title, hudTextColor},
		{h.Start, startColor},
		{h.Score, hudTextColor},
		{h.HighScore, hudTextColor},
		{h.Streak, hudTextColor},
		{h.Time, hudTextColor},
	}
	for _, item := range items {
		if item.label.Visible {
			drawLabel(screen, face, item.label, item.clr)
		}
	}
}

func drawLabel(screen *ebiten.Image, face text.Face, l HUDLabel, clr color.Color) {
	w, th := utils.MeasureText(l.Text, face, l.Scale)

	x := l.X
	switch l.Align {
	case AlignCenter:
		x -= w / 2
	case AlignRight:
		x -= w
	}
	y := config.FieldToScreenY(l.Y) - th/2

	utils.DrawText(screen, l.Text, face, x+2, y+2, l.Scale, hudShadow)
	utils.DrawText(screen, l.Text, face, x, y, l.Scale, clr)
}

func (h *HUDSystem) setScore(score int) {
	h.Score.Text = fmt.Sprintf("Score: %d", score)
}

func (h *HUDSystem) setHighScore(highScore int) {
	h.HighScore.Text = fmt.Sprintf("High Score: %d", highScore)
}

func (h *HUDSystem) setStreak(streak int) {
	h.Streak.Text = fmt.Sprintf("Streak: %d", streak)
	h.Streak.Visible = streak > 1
}

func (h *HUDSystem) setTime(remaining int) {
	h.Time.Text = fmt.Sprintf("%d", remaining)
}

func (h *HUDSystem) setStartButtonState(state components.UIState) {
	if ui, ok := ecs.GetComponent[*components.UIComponent](h.entityManager, h.startButtonID); ok {
		ui.State = state
	}
}

func (h *HUDSystem) isStartButtonHovered() bool {
	ui, ok := ecs.GetComponent[*components.UIComponent](h.entityManager, h.startButtonID)
	return ok && ui.State == components.UIHovered
}
