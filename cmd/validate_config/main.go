// validate_config 加载并校验玩法配置文件
//
// 用法：
//
//	go run ./cmd/validate_config -config data/game.yaml
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"

	"github.com/gonewx/carnival/pkg/config"
	"github.com/gonewx/carnival/pkg/types"
)

var (
	configPath = flag.String("config", "data/game.yaml", "玩法配置文件")
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
)

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.LoadGameConfig(*configPath)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ %s 格式正确\n", *configPath)

	warnings := checkCoverage(cfg)
	printSummary(cfg)

	if len(warnings) == 0 {
		fmt.Printf("✅ 所有靶子类型都有计分规则和判定框\n")
		return
	}
	for _, w := range warnings {
		fmt.Printf("⚠️  %s\n", w)
	}
}

// checkCoverage 检查每个靶子类型是否配置了分值和判定框
// 缺失不是错误：分值按 0 计算，判定框使用默认尺寸
func checkCoverage(cfg *config.GameConfig) []string {
	var warnings []string
	for _, kind := range types.AllEnemyKinds() {
		name := string(kind)
		if kind != types.EnemyBomb {
			if _, ok := cfg.Scoring.Values[name]; !ok {
				warnings = append(warnings, fmt.Sprintf("scoring.values.%s 未配置（按 0 分计算）", name))
			}
		}
		if _, ok := cfg.HitBoxes[name]; !ok {
			warnings = append(warnings, fmt.Sprintf("hitBoxes.%s 未配置（使用默认 100x100）", name))
		}
	}

	for name := range cfg.Scoring.Values {
		if _, ok := types.ParseEnemyKind(name); !ok || name == string(types.EnemyBomb) {
			warnings = append(warnings, fmt.Sprintf("scoring.values.%s 不是可计分的靶子类型，将被忽略", name))
		}
	}

	sort.Strings(warnings)
	return warnings
}

func printSummary(cfg *config.GameConfig) {
	fmt.Printf("   回合: %d 秒，节拍 %.2f 秒\n", cfg.Round.Seconds, cfg.Round.TickInterval)
	fmt.Printf("   航道: %.0f / %.0f / %.0f\n", cfg.Lanes.Row1, cfg.Lanes.Row2, cfg.Lanes.Row3)
	fmt.Printf("   掉落: 1/%d 概率，x ∈ [%d, %d]，%.1f~%.1f 秒\n",
		cfg.Drop.ChanceDenominator, cfg.Drop.MinX, cfg.Drop.MaxX, cfg.Drop.MinDuration, cfg.Drop.MaxDuration)
	fmt.Printf("   炸弹扣分: %d\n", cfg.Scoring.BombPenalty)
}
