package systems

import (
	"math/rand"

	"github.com/gonewx/carnival/pkg/types"
)

// EnemyCatalog 靶子目录
// 航道生成和随机掉落都从同一个目录中均匀抽取
type EnemyCatalog struct {
	kinds []types.EnemyKind
}

// NewEnemyCatalog 创建靶子目录
func NewEnemyCatalog(kinds []types.EnemyKind) *EnemyCatalog {
	copied := make([]types.EnemyKind, len(kinds))
	copy(copied, kinds)
	return &EnemyCatalog{kinds: copied}
}

// DefaultEnemyCatalog 返回 {bomb, duck, boat, target}
func DefaultEnemyCatalog() *EnemyCatalog {
	return NewEnemyCatalog(types.AllEnemyKinds())
}

// Draw 均匀抽取一种靶子；目录为空时返回 FallbackEnemyKind
func (c *EnemyCatalog) Draw(rng *rand.Rand) types.EnemyKind {
	if c == nil || len(c.kinds) == 0 {
		return types.FallbackEnemyKind
	}
	return c.kinds[rng.Intn(len(c.kinds))]
}

// Kinds 返回目录内容的副本
func (c *EnemyCatalog) Kinds() []types.EnemyKind {
	copied := make([]types.EnemyKind, len(c.kinds))
	copy(copied, c.kinds)
	return copied
}
