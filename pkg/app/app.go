// Package app 提供演示程序的核心包装器
//
// 该包将场景初始化逻辑从 main 包提取出来，main.go 只负责解析参数和启动窗口。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/gaze/pkg/config"
	"github.com/gonewx/gaze/pkg/game"
)

// 键盘推动视点的速度（单位/秒）
const nudgeSpeed = 10.0

// backgroundColor 背景色
var backgroundColor = color.RGBA{R: 24, G: 26, B: 32, A: 255}

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ScenePath 场景配置路径（"data/" 开头时优先读取嵌入资源）
	ScenePath string
	// StorageName gdata 存储名称，为空时不持久化设置
	StorageName string
}

// App 是演示程序的核心包装器，实现 ebiten.Game 接口
type App struct {
	world    *World
	scene    *config.SceneConfig
	settings *game.SettingsManager
	verbose  bool
}

// NewApp 创建并初始化应用
//
// 调用此函数前，如需读取嵌入场景，必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	sceneCfg := config.DefaultSceneConfig()
	if cfg.ScenePath != "" {
		loaded, err := config.LoadSceneConfig(cfg.ScenePath)
		if err != nil {
			return nil, fmt.Errorf("场景配置加载失败: %w", err)
		}
		sceneCfg = loaded
		log.Printf("[Config] 加载场景配置: %s (%d 个物体)", cfg.ScenePath, len(sceneCfg.Objects))
	}

	world, err := NewWorld(sceneCfg)
	if err != nil {
		return nil, err
	}

	// 查看偏好（gdata 不可用时降级为内存设置）
	var settingsManager *game.SettingsManager
	if cfg.StorageName != "" {
		settingsManager, _ = game.NewSettingsManager(game.OpenStorage(cfg.StorageName))
	} else {
		settingsManager, _ = game.NewSettingsManager(nil)
	}

	settings := settingsManager.GetSettings()
	world.Dolly.SpeedScale = settings.DollySpeedScale
	world.Dolly.SetPaused(!settings.DollyEnabled)
	log.Printf("[App] Scene ready: viewpoint=%d objects=%d", world.Scene.Viewpoint, len(world.Scene.Objects))

	return &App{
		world:    world,
		scene:    sceneCfg,
		settings: settingsManager,
		verbose:  cfg.Verbose,
	}, nil
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	deltaTime := 1.0 / float64(ebiten.TPS())
	a.handleInput(deltaTime)
	a.world.Step(deltaTime)
	return nil
}

// handleInput 处理演示程序的键盘输入
func (a *App) handleInput(deltaTime float64) {
	settings := a.settings.GetSettings()

	// Space 暂停/恢复视点轨道
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		a.settings.SetDollyEnabled(!settings.DollyEnabled)
		a.world.Dolly.SetPaused(!settings.DollyEnabled)
		a.saveSettings()
	}

	// W/S 手动推动视点
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		a.world.Dolly.Nudge(-nudgeSpeed * deltaTime)
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		a.world.Dolly.Nudge(nudgeSpeed * deltaTime)
	}

	// 方向键调整轨道速度倍率
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		a.settings.SetDollySpeedScale(settings.DollySpeedScale * 1.25)
		a.world.Dolly.SpeedScale = settings.DollySpeedScale
		a.saveSettings()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		a.settings.SetDollySpeedScale(settings.DollySpeedScale / 1.25)
		a.world.Dolly.SpeedScale = settings.DollySpeedScale
		a.saveSettings()
	}

	// H 切换状态面板
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		a.settings.SetShowHUD(!settings.ShowHUD)
		a.saveSettings()
	}

	// F 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		a.settings.SetFullscreen(!settings.Fullscreen)
		ebiten.SetFullscreen(settings.Fullscreen)
		a.saveSettings()
	}
}

// saveSettings 保存偏好，失败只记录日志
func (a *App) saveSettings() {
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	a.world.Render.Draw(screen)

	if a.settings.GetSettings().ShowHUD {
		a.world.Render.DrawHUD(screen)
	}
}

// Layout 返回逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.scene.Window.Width, a.scene.Window.Height
}

// Title 返回窗口标题
func (a *App) Title() string {
	return a.scene.Title
}

// WindowSize 返回配置的窗口尺寸
func (a *App) WindowSize() (int, int) {
	return a.scene.Window.Width, a.scene.Window.Height
}

// Fullscreen 返回启动时是否全屏
func (a *App) Fullscreen() bool {
	return a.settings.GetSettings().Fullscreen
}

// World 返回场景（测试和调试使用）
func (a *App) World() *World {
	return a.world
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
