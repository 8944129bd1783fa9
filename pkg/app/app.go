// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math"

	"github.com/gonewx/carnival/pkg/config"
	"github.com/gonewx/carnival/pkg/embedded"
	"github.com/gonewx/carnival/pkg/game"
	"github.com/gonewx/carnival/pkg/scenes"
	"github.com/gonewx/carnival/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储使用的应用名
const AppName = "carnival"

// soundVolumeStep -/= 键每次调节的音量
const soundVolumeStep = 0.1

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 玩法配置文件路径，为空则使用嵌入的 data/game.yaml
	ConfigPath string
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settingsManager          *game.SettingsManager
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入数据
// （使用 ConfigPath 时可以不初始化）。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := LoadGameConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("game config load failed: %w", err)
	}

	// 持久化：失败时退化为仅内存存储
	gdataManager := openStorage()

	settingsManager, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("settings manager init failed: %w", err)
	}
	highScores := game.NewGdataHighScoreStore(gdataManager)

	// 初始化音频上下文（整个进程只能创建一次）
	audioContext := audio.CurrentContext()
	if audioContext == nil {
		audioContext = audio.NewContext(game.AudioSampleRate)
	}
	audioManager := game.NewAudioManager(audioContext, settingsManager, gameConfig.Sounds)
	audioManager.PreloadSounds()
	log.Printf("[App] AudioManager initialized")

	resourceManager := game.NewResourceManager(config.GameWindowWidth, config.GameWindowHeight)
	resourceManager.PreloadSprites([]string{
		"bomb", "duck", "boat", "target",
		game.SpriteBlast, game.SpriteWaveRight, game.SpriteWaveLeft,
		game.SpriteShelf, game.SpriteBackground,
	})

	sceneManager := game.NewSceneManager()
	gameScene, err := scenes.NewGameScene(resourceManager, sceneManager, scenes.GameSceneOptions{
		Config:     gameConfig,
		HighScores: highScores,
		Settings:   settingsManager,
		Audio:      audioManager,
		Seed:       cfg.Seed,
	})
	if err != nil {
		return nil, fmt.Errorf("game scene init failed: %w", err)
	}
	sceneManager.SwitchTo(gameScene)

	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}
	ebiten.SetWindowClosingHandled(true)

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
	}, nil
}

// LoadGameConfig 加载玩法配置
// path 为空时读取嵌入的 data/game.yaml；嵌入数据不可用时使用默认配置
func LoadGameConfig(path string) (*config.GameConfig, error) {
	if path != "" {
		log.Printf("[Config] Loading game config from %s", path)
		return config.LoadGameConfig(path)
	}

	if !embedded.IsInitialized() {
		log.Printf("[Config] Warning: embedded data unavailable, using default game config")
		return config.DefaultGameConfig(), nil
	}

	data, err := embedded.ReadFile(embedded.GameConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", embedded.GameConfigPath, err)
	}
	return config.ParseGameConfig(data)
}

// openStorage 打开 gdata 存储，失败时返回 nil（降级模式）
func openStorage() *gdata.Manager {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: Failed to prepare storage directory: %v", err)
	}

	manager, err := gdata.Open(gdata.Config{
		AppName: AppName,
	})
	if err != nil {
		log.Printf("[App] Warning: Failed to open gdata storage: %v (high score will not persist)", err)
		return nil
	}
	if path := utils.GetStoragePath(); path != "" {
		log.Printf("[App] Storage path: %s", path)
	}
	return manager
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 关闭窗口前保存
	if ebiten.IsWindowBeingClosed() {
		if !a.sceneManager.SaveOnExit() {
			log.Printf("[App] Warning: Save on exit failed")
		}
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			// 退出全屏
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
		a.settingsManager.SetFullscreen(ebiten.IsFullscreen())
	}

	// M 静音切换，-/= 调节音量
	applySoundKeys(a.settingsManager, readSoundKeys())

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// soundKeys 本帧按下的音效快捷键
type soundKeys struct {
	Toggle     bool
	VolumeDown bool
	VolumeUp   bool
}

func readSoundKeys() soundKeys {
	return soundKeys{
		Toggle:     inpututil.IsKeyJustPressed(ebiten.KeyM),
		VolumeDown: inpututil.IsKeyJustPressed(ebiten.KeyMinus),
		VolumeUp:   inpututil.IsKeyJustPressed(ebiten.KeyEqual),
	}
}

// applySoundKeys 按快捷键修改音效设置，有变化时立即保存
// AudioManager 每次播放时读取设置，修改立刻生效
//
// 返回：
//   - bool: 设置是否发生变化
func applySoundKeys(sm *game.SettingsManager, keys soundKeys) bool {
	changed := false

	if keys.Toggle {
		enabled := sm.ToggleSound()
		log.Printf("[App] Sound enabled: %v", enabled)
		changed = true
	}

	step := 0.0
	if keys.VolumeUp {
		step += soundVolumeStep
	}
	if keys.VolumeDown {
		step -= soundVolumeStep
	}
	if step != 0 {
		before := sm.GetSettings().SoundVolume
		// 保留一位小数，避免浮点误差累积
		sm.SetSoundVolume(math.Round((before+step)*10) / 10)
		if after := sm.GetSettings().SoundVolume; after != before {
			log.Printf("[App] Sound volume: %.1f", after)
			changed = true
		}
	}

	if changed {
		if err := sm.Save(); err != nil {
			log.Printf("[App] Warning: Failed to save sound settings: %v", err)
		}
	}
	return changed
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}
