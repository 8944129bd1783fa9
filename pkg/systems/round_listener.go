package systems

import "github.com/gonewx/carnival/pkg/game"

// RoundListener 接收回合和计分事件
//
// GameState 本身没有副作用；界面刷新、统计等都通过监听器对返回的结果做出反应。
// 最高分的持久化不走监听器，由 HitResolverSystem 在点击处理中同步完成
type RoundListener interface {
	OnRoundStarted(gs *game.GameState)
	OnTick(result game.TickResult)
	OnRoundEnded(gs *game.GameState)
	OnScoreChange(change game.ScoreChange)
}

// RoundListeners 将事件按顺序分发给多个监听器
type RoundListeners []RoundListener

// OnRoundStarted 实现 RoundListener
func (ls RoundListeners) OnRoundStarted(gs *game.GameState) {
	for _, l := range ls {
		l.OnRoundStarted(gs)
	}
}

// OnTick 实现 RoundListener
func (ls RoundListeners) OnTick(result game.TickResult) {
	for _, l := range ls {
		l.OnTick(result)
	}
}

// OnRoundEnded 实现 RoundListener
func (ls RoundListeners) OnRoundEnded(gs *game.GameState) {
	for _, l := range ls {
		l.OnRoundEnded(gs)
	}
}

// OnScoreChange 实现 RoundListener
func (ls RoundListeners) OnScoreChange(change game.ScoreChange) {
	for _, l := range ls {
		l.OnScoreChange(change)
	}
}
