package main

import (
	"flag"
	"log"

	"github.com/gonewx/carnival/pkg/app"
	"github.com/gonewx/carnival/pkg/config"
	"github.com/gonewx/carnival/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	configPath := flag.String("config", "", "game config YAML (default: embedded data/game.yaml)")
	seed := flag.Int64("seed", 0, "random seed (0 = time based)")
	flag.Parse()

	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Seed:       *seed,
	})
	if err != nil {
		log.Fatalf("game init failed: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.GameWindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
