package systems

import (
	"github.com/gonewx/carnival/pkg/game"
	"github.com/gonewx/carnival/pkg/types"
)

// RoundStats 统计当前回合的命中、失误和最佳连击
// 作为 RoundListener 挂在调度器和命中处理系统上，回合开始时清零
type RoundStats struct {
	Ticks      int // 本回合已经过的节拍
	Hits       int // 有效命中（含炸弹）
	Bombs      int // 命中炸弹的次数
	Misses     int // 未命中或点中未识别标签
	BestStreak int
}

// OnRoundStarted 实现 RoundListener
func (rs *RoundStats) OnRoundStarted(gs *game.GameState) {
	*rs = RoundStats{}
}

// OnTick 实现 RoundListener
func (rs *RoundStats) OnTick(result game.TickResult) {
	rs.Ticks++
}

// OnRoundEnded 实现 RoundListener
// 统计保留到下一回合开始，供结算显示
func (rs *RoundStats) OnRoundEnded(gs *game.GameState) {}

// OnScoreChange 实现 RoundListener
func (rs *RoundStats) OnScoreChange(change game.ScoreChange) {
	if !change.Scored {
		rs.Misses++
		return
	}

	rs.Hits++
	if change.Kind == types.EnemyBomb {
		rs.Bombs++
	}
	if change.Streak > rs.BestStreak {
		rs.BestStreak = change.Streak
	}
}
