// Package types 定义共享的基础类型
package types

// EnemyKind 定义靶子的类型
// 取值同时作为实体的标签（tag）和贴图名
type EnemyKind string

const (
	EnemyBomb   EnemyKind = "bomb"   // 炸弹：命中扣分并清空连击
	EnemyDuck   EnemyKind = "duck"   // 鸭子
	EnemyBoat   EnemyKind = "boat"   // 小船
	EnemyTarget EnemyKind = "target" // 圆靶
)

// FallbackEnemyKind 靶子目录为空时使用的默认类型
const FallbackEnemyKind = EnemyTarget

// AllEnemyKinds 返回靶子目录（三条航道和掉落物共用）
// 顺序固定，保证同一随机种子下生成结果可复现
func AllEnemyKinds() []EnemyKind {
	return []EnemyKind{EnemyBomb, EnemyDuck, EnemyBoat, EnemyTarget}
}

// DropKind 掉落物类型名单
//
// 只作为名单保留：掉落物实际从 AllEnemyKinds 中抽取，
// 计分只识别 EnemyKind，"missile" 没有计分规则
type DropKind string

const (
	DropBomb    DropKind = "bomb"
	DropMissile DropKind = "missile"
	DropTarget  DropKind = "target"
	DropDuck    DropKind = "duck"
)

// AllDropKinds 返回掉落物类型名单
func AllDropKinds() []DropKind {
	return []DropKind{DropBomb, DropMissile, DropTarget, DropDuck}
}

// ParseEnemyKind 将实体标签解析为靶子类型
// 标签不在靶子目录中时返回 false
func ParseEnemyKind(tag string) (EnemyKind, bool) {
	for _, kind := range AllEnemyKinds() {
		if string(kind) == tag {
			return kind, true
		}
	}
	return "", false
}

// String 实现 fmt.Stringer
func (k EnemyKind) String() string {
	return string(k)
}

// SpawnSource 标识实体由哪条航道（或掉落）生成
type SpawnSource int

const (
	SourceLaneA SpawnSource = iota // 第一行：左→右，摇摆平移
	SourceLaneB                    // 第二行：右→左，旋转平移
	SourceLaneC                    // 第三行：跳跃前进
	SourceDrop                     // 随机掉落
)

// String 实现 fmt.Stringer
func (s SpawnSource) String() string {
	switch s {
	case SourceLaneA:
		return "laneA"
	case SourceLaneB:
		return "laneB"
	case SourceLaneC:
		return "laneC"
	case SourceDrop:
		return "drop"
	default:
		return "unknown"
	}
}
