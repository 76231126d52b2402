// Package app 提供游戏应用的核心包装器
//
// 初始化逻辑从 main 包提取出来，让桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"errors"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/pong/pkg/config"
	"github.com/gonewx/pong/pkg/game"
	"github.com/gonewx/pong/pkg/scenes"
	"github.com/gonewx/pong/pkg/utils"
)

// gdataAppName gdata 存储目录名
const gdataAppName = "gonewx_pong"

// Config 应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Game 宿主配置，nil 时使用默认配置
	Game *config.GameConfig
	// Mute 本次运行禁用音效（不修改保存的设置）
	Mute bool
	// Fullscreen 强制全屏启动
	Fullscreen bool
}

// App 游戏应用，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	config          *config.GameConfig
	verbose         bool
	mute            bool

	pendingWindowSizeReset   bool // 退出全屏后延迟恢复窗口大小
	windowSizeResetCountdown int
}

// NewApp 创建并初始化游戏应用
//
// 音频或存储不可用时降级运行（静音、仅内存设置），不返回错误。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig := cfg.Game
	if gameConfig == nil {
		gameConfig = config.DefaultGameConfig()
	}
	if err := gameConfig.Validate(); err != nil {
		return nil, err
	}

	gdataManager := openStorage()
	settingsManager := game.NewSettingsManager(gdataManager)
	recordManager := game.NewRecordManager(gdataManager)

	// 同一进程只能创建一个音频上下文
	audioContext := audio.NewContext(gameConfig.SampleRate)
	audioManager := game.NewAudioManager(audioContext, settingsManager)
	if err := audioManager.LoadSounds(); err != nil {
		log.Printf("[App] Warning: Some sounds failed to load: %v", err)
	}
	log.Printf("[App] AudioManager initialized")

	var effects game.EffectSink = audioManager
	if cfg.Mute {
		effects = game.NoopEffects{}
		log.Printf("[App] Sound muted by command line")
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func() game.Scene {
		return scenes.NewGameScene(scenes.GameSceneOptions{
			Config:        gameConfig,
			Effects:       effects,
			RecordManager: recordManager,
		})
	})
	if !sceneManager.Reload() {
		return nil, errors.New("failed to create game scene")
	}

	if cfg.Fullscreen {
		settingsManager.SetFullscreen(true)
	}

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		config:          gameConfig,
		verbose:         cfg.Verbose,
		mute:            cfg.Mute,
	}, nil
}

// openStorage 打开 gdata 存储，失败时返回 nil（降级模式）
func openStorage() *gdata.Manager {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}

	m, err := gdata.Open(gdata.Config{AppName: gdataAppName})
	if err != nil {
		log.Printf("[App] Warning: Failed to open storage: %v (settings will not be saved)", err)
		return nil
	}
	return m
}

// ApplyWindowSettings 在 RunGame 之前设置窗口
func (a *App) ApplyWindowSettings() {
	scale := a.config.WindowScale
	ebiten.SetWindowSize(int(config.WindowWidth*scale), int(config.WindowHeight*scale))
	ebiten.SetWindowTitle(a.config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(a.config.TPS)
	ebiten.SetFullscreen(a.settingsManager.GetSettings().Fullscreen)
}

// Update 每个 tick 调用一次
func (a *App) Update() error {
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			scale := a.config.WindowScale
			ebiten.SetWindowSize(int(config.WindowWidth*scale), int(config.WindowHeight*scale))
			a.pendingWindowSizeReset = false
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		log.Printf("[App] Escape pressed, quitting")
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyM) && !a.mute {
		enabled := a.settingsManager.ToggleSoundEnabled()
		log.Printf("[App] Sound enabled: %v", enabled)
	}

	a.sceneManager.Update(a.config.DeltaTime())
	return nil
}

// toggleFullscreen 切换全屏并记录到设置
func (a *App) toggleFullscreen() {
	fullscreen := a.settingsManager.ToggleFullscreen()
	ebiten.SetFullscreen(fullscreen)

	if !fullscreen {
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 窗口管理器需要几帧处理退出全屏
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
	}
	log.Printf("[App] Fullscreen: %v", fullscreen)
}

// Draw 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 ebiten.FinalScreenDrawer
// 全屏时两侧填充黑色，使用线性滤波缩放
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回固定的逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(config.WindowWidth), int(config.WindowHeight)
}

// Shutdown 保存设置和当前场景的状态
// RunGame 返回后调用（窗口关闭或按 Escape）
func (a *App) Shutdown() {
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: Failed to save settings: %v", err)
	}
	if !a.sceneManager.SaveOnExit() {
		log.Printf("[App] Warning: Current scene failed to save on exit")
	}
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
