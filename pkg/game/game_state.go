package game

import (
	"fmt"

	"github.com/gonewx/carnival/pkg/config"
	"github.com/gonewx/carnival/pkg/types"
)

// Phase 回合阶段
type Phase int

const (
	// PhaseIdle 未开始或已结束，只响应开始按钮
	PhaseIdle Phase = iota
	// PhaseRunning 回合进行中，计时、生成、计分
	PhaseRunning
)

// String 实现 fmt.Stringer
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseRunning:
		return "Running"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// ScoringRules 计分规则
type ScoringRules struct {
	Values      map[types.EnemyKind]int // 靶子基础分，同时是连击加成的增量
	BombPenalty int                     // 命中炸弹扣分
}

// DefaultScoringRules 返回默认计分规则：船 5、鸭 3、靶 1、炸弹 -5
func DefaultScoringRules() ScoringRules {
	return ScoringRulesFromConfig(config.DefaultGameConfig())
}

// ScoringRulesFromConfig 从玩法配置构造计分规则
// 配置中不属于靶子目录的类型被忽略
func ScoringRulesFromConfig(cfg *config.GameConfig) ScoringRules {
	rules := ScoringRules{
		Values:      make(map[types.EnemyKind]int),
		BombPenalty: cfg.Scoring.BombPenalty,
	}
	for name, value := range cfg.Scoring.Values {
		kind, ok := types.ParseEnemyKind(name)
		if !ok || kind == types.EnemyBomb {
			continue
		}
		rules.Values[kind] = value
	}
	return rules
}

// ScoreChange 一次计分操作的结果
// 显示和持久化由调用方根据结果处理，GameState 本身没有副作用
type ScoreChange struct {
	Kind         types.EnemyKind // 命中的靶子类型（Miss/未识别时为空）
	Delta        int             // 分数变化
	Score        int             // 变化后的分数
	Streak       int             // 变化后的连击数
	StreakBonus  int             // 变化后的连击加成
	HighScore    int             // 变化后的最高分
	NewHighScore bool            // 本次操作刷新了最高分
	Scored       bool            // 是否是一次有效命中（炸弹也算）
}

// TickResult 一次计时节拍的结果
type TickResult struct {
	TimeRemaining int  // 节拍后的剩余时间
	Spawn         bool // 本节拍需要生成一波
	Ended         bool // 本节拍结束了回合
}

// GameState 存储一局游戏的全部状态
//
// 这是一个纯数据记录：所有修改都通过方法完成并返回结果，
// 不直接更新界面或写存档
type GameState struct {
	Phase         Phase
	Score         int // 当前分数，允许为负
	HighScore     int // 最高分，单调不减
	Streak        int // 连续有效命中次数
	StreakBonus   int // 连击加成
	TimeRemaining int // 剩余时间（秒），仅在 PhaseRunning 时有意义
	RoundsPlayed  int // 已开始的回合数
	HasStarted    bool

	rules ScoringRules
}

// NewGameState 创建游戏状态
//
// 参数：
//   - highScore: 从存档读取的最高分（缺失时为 0）
//   - rules: 计分规则
func NewGameState(highScore int, rules ScoringRules) *GameState {
	if rules.Values == nil {
		rules = DefaultScoringRules()
	}
	return &GameState{
		Phase:     PhaseIdle,
		HighScore: highScore,
		rules:     rules,
	}
}

// IsRunning 回合是否进行中
func (gs *GameState) IsRunning() bool {
	return gs.Phase == PhaseRunning
}

// StartRound 开始新回合
// 分数清零、计时重置；连击保持不变。回合进行中调用返回 false
func (gs *GameState) StartRound(seconds int) bool {
	if gs.Phase == PhaseRunning {
		return false
	}
	gs.Phase = PhaseRunning
	gs.Score = 0
	gs.TimeRemaining = seconds
	gs.RoundsPlayed++
	gs.HasStarted = true
	return true
}

// StopRound 结束回合
func (gs *GameState) StopRound() {
	gs.Phase = PhaseIdle
}

// Tick 推进一个计时节拍
// 非进行中时为空操作；剩余时间归零时结束回合且本节拍不生成
func (gs *GameState) Tick() TickResult {
	if gs.Phase != PhaseRunning {
		return TickResult{TimeRemaining: gs.TimeRemaining}
	}

	gs.TimeRemaining--
	if gs.TimeRemaining <= 0 {
		gs.StopRound()
		return TickResult{TimeRemaining: gs.TimeRemaining, Ended: true}
	}

	return TickResult{TimeRemaining: gs.TimeRemaining, Spawn: true}
}

// ApplyHit 应用一次命中
//
// 船/鸭/靶：加 (基础分 + 当前连击加成)，随后加成增加基础分、连击 +1
// 炸弹：扣分并清空连击
func (gs *GameState) ApplyHit(kind types.EnemyKind) ScoreChange {
	if kind == types.EnemyBomb {
		delta := -gs.rules.BombPenalty
		gs.resetStreak()
		return gs.applyDelta(kind, delta)
	}

	base := gs.rules.Values[kind]
	delta := base + gs.StreakBonus
	gs.StreakBonus += base
	gs.Streak++
	return gs.applyDelta(kind, delta)
}

// ApplyUnrecognized 命中了不在靶子目录中的标签：不计分，清空连击
func (gs *GameState) ApplyUnrecognized() ScoreChange {
	gs.resetStreak()
	return gs.snapshot()
}

// ApplyMiss 本次点击没有任何有效命中：不计分，清空连击
func (gs *GameState) ApplyMiss() ScoreChange {
	gs.resetStreak()
	return gs.snapshot()
}

// resetStreak 连击数与连击加成总是一起清零
func (gs *GameState) resetStreak() {
	gs.Streak = 0
	gs.StreakBonus = 0
}

func (gs *GameState) applyDelta(kind types.EnemyKind, delta int) ScoreChange {
	gs.Score += delta

	change := gs.snapshot()
	change.Kind = kind
	change.Delta = delta
	change.Scored = true

	if gs.Score > gs.HighScore {
		gs.HighScore = gs.Score
		change.HighScore = gs.HighScore
		change.NewHighScore = true
	}

	return change
}

func (gs *GameState) snapshot() ScoreChange {
	return ScoreChange{
		Score:       gs.Score,
		Streak:      gs.Streak,
		StreakBonus: gs.StreakBonus,
		HighScore:   gs.HighScore,
	}
}
