package components

import "github.com/gonewx/carnival/pkg/types"

// EnemyComponent 标记一个可射击的靶子
//
// Tag 是实体的标签，计分时据此识别类型；
// 标签不在靶子目录中时 Recognized 为 false，命中后只清空连击、不计分
type EnemyComponent struct {
	Tag        string            // 实体标签（贴图名）
	Kind       types.EnemyKind   // 解析后的靶子类型，Recognized 为 false 时无意义
	Recognized bool              // 标签是否属于靶子目录
	Source     types.SpawnSource // 生成来源（航道或掉落）
	IsHit      bool              // 已被击中，正在播放消失动画
}

// NewEnemyComponent 根据标签创建靶子组件
func NewEnemyComponent(tag string, source types.SpawnSource) *EnemyComponent {
	kind, ok := types.ParseEnemyKind(tag)
	return &EnemyComponent{
		Tag:        tag,
		Kind:       kind,
		Recognized: ok,
		Source:     source,
	}
}

// CullableComponent 标记实体离开场地边界后需要被剔除
// 装饰物（水波、货架）和 UI 不带此组件
type CullableComponent struct{}
