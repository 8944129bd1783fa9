package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GameConfig 靶场玩法配置
// 对应 data/game.yaml，字段缺省时沿用 DefaultGameConfig 中的值
type GameConfig struct {
	Bounds   BoundsConfig       `yaml:"bounds"`   // 场地边界
	Lanes    LanesConfig        `yaml:"lanes"`    // 三条航道的高度
	Round    RoundConfig        `yaml:"round"`    // 回合计时
	Motion   MotionConfig       `yaml:"motion"`   // 动作参数
	Drop     DropConfig         `yaml:"drop"`     // 随机掉落
	Scoring  ScoringConfig      `yaml:"scoring"`  // 计分规则
	HitBoxes map[string]HitBox  `yaml:"hitBoxes"` // 靶子类型 -> 点击判定框
	Effects  EffectsConfig      `yaml:"effects"`  // 命中/消失特效
	Sounds   map[string]float64 `yaml:"sounds"`   // 音效ID -> 音高（Hz）
}

// BoundsConfig 场地边界（场地坐标）
// *Over 为实际剔除阈值，略超出可见边缘，让实体先完整移出画面再消失
type BoundsConfig struct {
	Top        float64 `yaml:"top"`
	TopOver    float64 `yaml:"topOver"`
	Right      float64 `yaml:"right"`
	RightOver  float64 `yaml:"rightOver"`
	Bottom     float64 `yaml:"bottom"`
	BottomOver float64 `yaml:"bottomOver"`
}

// LanesConfig 三条固定航道的 Y 坐标
type LanesConfig struct {
	Row1 float64 `yaml:"row1"`
	Row2 float64 `yaml:"row2"`
	Row3 float64 `yaml:"row3"`
}

// RoundConfig 回合计时配置
type RoundConfig struct {
	Seconds      int     `yaml:"seconds"`      // 每回合时长（秒）
	TickInterval float64 `yaml:"tickInterval"` // 生成节拍间隔（秒）
}

// MotionConfig 三条航道和掉落物的动作参数
type MotionConfig struct {
	LaneADuration      float64 `yaml:"laneADuration"`      // 第一行穿越时长
	LaneBDuration      float64 `yaml:"laneBDuration"`      // 第二行穿越时长
	LaneBRotationSpeed float64 `yaml:"laneBRotationSpeed"` // 第二行旋转速度（弧度/秒）
	BounceAngle        float64 `yaml:"bounceAngle"`        // 摇摆幅度（弧度）
	BounceStep         float64 `yaml:"bounceStep"`         // 摇摆每步时长
	HopDistance        float64 `yaml:"hopDistance"`        // 第三行每次前进距离
	HopHeight          float64 `yaml:"hopHeight"`          // 第三行跳跃高度
	HopStep            float64 `yaml:"hopStep"`            // 第三行每步时长
}

// DropConfig 随机掉落配置
// 每个节拍从 [1, ChanceDenominator] 中均匀抽取，等于 TriggerValue 时掉落
type DropConfig struct {
	ChanceDenominator int     `yaml:"chanceDenominator"`
	TriggerValue      int     `yaml:"triggerValue"`
	MinX              int     `yaml:"minX"`
	MaxX              int     `yaml:"maxX"`
	MinDuration       float64 `yaml:"minDuration"`
	MaxDuration       float64 `yaml:"maxDuration"`
}

// ScoringConfig 计分规则
type ScoringConfig struct {
	Values      map[string]int `yaml:"values"`      // 靶子类型 -> 基础分（同时是连击加成增量）
	BombPenalty int            `yaml:"bombPenalty"` // 命中炸弹扣分
}

// HitBox 点击判定框尺寸（以实体位置为中心）
type HitBox struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// EffectsConfig 特效参数
type EffectsConfig struct {
	ImpactDuration    float64 `yaml:"impactDuration"`    // 弹孔淡出时长
	ImpactMaxRotation float64 `yaml:"impactMaxRotation"` // 弹孔随机旋转上限（弧度）
	RemovalDuration   float64 `yaml:"removalDuration"`   // 命中后消失动画时长
	RemovalScaleY     float64 `yaml:"removalScaleY"`     // 消失动画结束时的纵向缩放
}

// DefaultGameConfig 返回默认配置
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Bounds: BoundsConfig{
			Top:        868,
			TopOver:    869,
			Right:      1124,
			RightOver:  1125,
			Bottom:     -100,
			BottomOver: -101,
		},
		Lanes: LanesConfig{
			Row1: 600,
			Row2: 400,
			Row3: 200,
		},
		Round: RoundConfig{
			Seconds:      60,
			TickInterval: 1.0,
		},
		Motion: MotionConfig{
			LaneADuration:      3,
			LaneBDuration:      6,
			LaneBRotationSpeed: 1,
			BounceAngle:        1,
			BounceStep:         0.25,
			HopDistance:        200,
			HopHeight:          50,
			HopStep:            0.25,
		},
		Drop: DropConfig{
			ChanceDenominator: 3,
			TriggerValue:      3,
			MinX:              100,
			MaxX:              800,
			MinDuration:       1,
			MaxDuration:       2,
		},
		Scoring: ScoringConfig{
			Values: map[string]int{
				"boat":   5,
				"duck":   3,
				"target": 1,
			},
			BombPenalty: 5,
		},
		HitBoxes: map[string]HitBox{
			"bomb":   {Width: 90, Height: 90},
			"duck":   {Width: 110, Height: 100},
			"boat":   {Width: 140, Height: 90},
			"target": {Width: 100, Height: 100},
		},
		Effects: EffectsConfig{
			ImpactDuration:    0.25,
			ImpactMaxRotation: 5,
			RemovalDuration:   0.25,
			RemovalScaleY:     0.25,
		},
		Sounds: map[string]float64{
			"SOUND_HIT":   880,
			"SOUND_BOMB":  110,
			"SOUND_START": 660,
			"SOUND_OVER":  220,
		},
	}
}

// LoadGameConfig 从 YAML 文件加载玩法配置
func LoadGameConfig(filePath string) (*GameConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file: %w", err)
	}

	return ParseGameConfig(data)
}

// ParseGameConfig 解析 YAML 数据
// 未出现的字段保留默认值
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置的有效性
func (c *GameConfig) Validate() error {
	b := c.Bounds
	if b.TopOver < b.Top {
		return fmt.Errorf("bounds.topOver (%.0f) must be >= bounds.top (%.0f)", b.TopOver, b.Top)
	}
	if b.RightOver < b.Right {
		return fmt.Errorf("bounds.rightOver (%.0f) must be >= bounds.right (%.0f)", b.RightOver, b.Right)
	}
	if b.BottomOver > b.Bottom {
		return fmt.Errorf("bounds.bottomOver (%.0f) must be <= bounds.bottom (%.0f)", b.BottomOver, b.Bottom)
	}
	if b.Bottom >= b.Right || b.Bottom >= b.Top {
		return fmt.Errorf("bounds describe an empty play field")
	}

	for name, y := range map[string]float64{"row1": c.Lanes.Row1, "row2": c.Lanes.Row2, "row3": c.Lanes.Row3} {
		if y <= b.Bottom || y >= b.Top {
			return fmt.Errorf("lanes.%s (%.0f) must lie inside the play field", name, y)
		}
	}

	if c.Round.Seconds < 1 {
		return fmt.Errorf("round.seconds must be >= 1, got %d", c.Round.Seconds)
	}
	if c.Round.TickInterval <= 0 {
		return fmt.Errorf("round.tickInterval must be > 0, got %v", c.Round.TickInterval)
	}

	m := c.Motion
	if m.LaneADuration <= 0 || m.LaneBDuration <= 0 {
		return fmt.Errorf("motion lane durations must be > 0")
	}
	if m.BounceStep <= 0 || m.HopStep <= 0 {
		return fmt.Errorf("motion.bounceStep and motion.hopStep must be > 0")
	}

	d := c.Drop
	if d.ChanceDenominator < 1 {
		return fmt.Errorf("drop.chanceDenominator must be >= 1, got %d", d.ChanceDenominator)
	}
	if d.TriggerValue < 1 || d.TriggerValue > d.ChanceDenominator {
		return fmt.Errorf("drop.triggerValue must be in [1, %d], got %d", d.ChanceDenominator, d.TriggerValue)
	}
	if d.MinX > d.MaxX {
		return fmt.Errorf("drop.minX (%d) must be <= drop.maxX (%d)", d.MinX, d.MaxX)
	}
	if d.MinDuration <= 0 || d.MinDuration > d.MaxDuration {
		return fmt.Errorf("drop duration range [%v, %v] is invalid", d.MinDuration, d.MaxDuration)
	}

	for kind, value := range c.Scoring.Values {
		if kind == "" {
			return fmt.Errorf("scoring.values contains an empty kind")
		}
		if value < 0 {
			return fmt.Errorf("scoring.values.%s must be >= 0, got %d", kind, value)
		}
	}
	if c.Scoring.BombPenalty < 0 {
		return fmt.Errorf("scoring.bombPenalty must be >= 0, got %d", c.Scoring.BombPenalty)
	}

	for kind, box := range c.HitBoxes {
		if box.Width <= 0 || box.Height <= 0 {
			return fmt.Errorf("hitBoxes.%s must have positive size", kind)
		}
	}

	if c.Effects.ImpactDuration <= 0 || c.Effects.RemovalDuration <= 0 {
		return fmt.Errorf("effect durations must be > 0")
	}
	if c.Effects.RemovalScaleY < 0 || c.Effects.RemovalScaleY > 1 {
		return fmt.Errorf("effects.removalScaleY must be in [0, 1], got %v", c.Effects.RemovalScaleY)
	}

	return nil
}

// HitBoxFor 返回指定类型的点击判定框，未配置时返回默认尺寸
func (c *GameConfig) HitBoxFor(kind string) HitBox {
	if box, ok := c.HitBoxes[kind]; ok {
		return box
	}
	return HitBox{Width: 100, Height: 100}
}

// LaneRows 按航道顺序返回三条航道的 Y 坐标
func (c *GameConfig) LaneRows() [3]float64 {
	return [3]float64{c.Lanes.Row1, c.Lanes.Row2, c.Lanes.Row3}
}
