// simulate 无界面运行若干回合，输出每回合的分数和最高分
//
// 用法：
//
//	go run ./cmd/simulate -rounds 5 -seed 42 -accuracy 0.8 -avoid-bombs
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gonewx/carnival/pkg/config"
	"github.com/gonewx/carnival/pkg/game"
)

var (
	rounds     = flag.Int("rounds", 3, "回合数")
	seed       = flag.Int64("seed", 1, "随机种子")
	tapRate    = flag.Float64("taps", 3, "平均每秒点击次数")
	accuracy   = flag.Float64("accuracy", 0.7, "瞄准活动靶子的概率 [0, 1]")
	avoidBombs = flag.Bool("avoid-bombs", false, "瞄准时跳过炸弹")
	configPath = flag.String("config", "", "玩法配置文件（默认使用内置配置）")
	highScore  = flag.Int("high-score", 0, "初始最高分")
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
)

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg := config.DefaultGameConfig()
	if *configPath != "" {
		loaded, err := config.LoadGameConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "❌ 配置加载失败: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	store := game.NewMemoryHighScoreStore(*highScore)
	sim := newSimulator(cfg, store, Options{
		Rounds:        *rounds,
		Seed:          *seed,
		TapsPerSecond: *tapRate,
		Accuracy:      *accuracy,
		AvoidBombs:    *avoidBombs,
	})

	fmt.Printf("%-6s %7s %7s %6s %5s %5s %7s %7s\n", "Round", "Score", "High", "Waves", "Taps", "Hits", "Misses", "Streak")
	for i := 0; i < *rounds; i++ {
		r := sim.runRound()
		fmt.Printf("%-6d %7d %7d %6d %5d %5d %7d %7d\n", r.Round, r.Score, r.HighScore, r.Waves, r.Taps, r.Hits, r.Misses, r.BestStreak)
	}
	fmt.Printf("High score written %d time(s), final %d\n", store.Writes, store.Get())
}
