package game

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/quasilyte/gdata/v2"
)

// HighScoreStore 最高分存储
// 只有一个整数槽位 "highScore"
type HighScoreStore interface {
	// Get 读取最高分，不存在或无法读取时返回 0
	Get() int
	// Set 同步写入最高分
	Set(score int) error
}

// 存储路径常量
const (
	highScoreObject   = "highScore"
	highScoreProperty = "value"
)

// GdataHighScoreStore 基于 gdata 的最高分存储
// gdataManager 为 nil 时退化为仅内存存储（降级模式）
type GdataHighScoreStore struct {
	gdataManager *gdata.Manager
	fallback     *MemoryHighScoreStore
}

// NewGdataHighScoreStore 创建最高分存储
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式）
func NewGdataHighScoreStore(gdataManager *gdata.Manager) *GdataHighScoreStore {
	if gdataManager == nil {
		log.Printf("[HighScoreStore] Warning: gdata manager unavailable, high score will not persist")
	}
	return &GdataHighScoreStore{
		gdataManager: gdataManager,
		fallback:     &MemoryHighScoreStore{},
	}
}

// Get 读取最高分
func (s *GdataHighScoreStore) Get() int {
	if s.gdataManager == nil {
		return s.fallback.Get()
	}

	if !s.gdataManager.ObjectPropExists(highScoreObject, highScoreProperty) {
		return 0
	}

	data, err := s.gdataManager.LoadObjectProp(highScoreObject, highScoreProperty)
	if err != nil {
		log.Printf("[HighScoreStore] Warning: Failed to load high score: %v (using 0)", err)
		return 0
	}

	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		log.Printf("[HighScoreStore] Warning: Corrupted high score %q (using 0)", string(data))
		return 0
	}

	return score
}

// Set 写入最高分
func (s *GdataHighScoreStore) Set(score int) error {
	if s.gdataManager == nil {
		return s.fallback.Set(score)
	}

	data := []byte(strconv.Itoa(score))
	if err := s.gdataManager.SaveObjectProp(highScoreObject, highScoreProperty, data); err != nil {
		return fmt.Errorf("failed to save high score: %w", err)
	}

	return nil
}

// MemoryHighScoreStore 内存中的最高分存储（测试和降级模式使用）
type MemoryHighScoreStore struct {
	score  int
	Writes int // 写入次数
}

// NewMemoryHighScoreStore 创建带初始值的内存存储
func NewMemoryHighScoreStore(initial int) *MemoryHighScoreStore {
	return &MemoryHighScoreStore{score: initial}
}

// Get 读取最高分
func (s *MemoryHighScoreStore) Get() int {
	return s.score
}

// Set 写入最高分
func (s *MemoryHighScoreStore) Set(score int) error {
	s.score = score
	s.Writes++
	return nil
}
