// Package app 提供菜单程序的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来：加载配置、打开设置存储、加载徽标纹理、
// 创建菜单场景。App 实现 ebiten.Game 接口，由 main.go 交给 ebiten.RunGame 驱动。
package app

import (
	"fmt"
	"io"
	"log"

	"github.com/decker502/glmenu/pkg/config"
	"github.com/decker502/glmenu/pkg/game"
	"github.com/decker502/glmenu/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// MenuConfigPath 菜单布局配置文件路径，为空则使用嵌入的默认配置
	MenuConfigPath string
	// LogoPath 覆盖配置中的徽标路径，为空则使用配置值
	LogoPath string
}

// App 是菜单程序的核心包装器，实现 ebiten.Game 接口
type App struct {
	menuConfig *config.MenuConfig
	settings   *game.SettingsManager
	logo       *game.Texture
	scene      *scenes.MenuScene

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// windowSizeResetDelay 退出全屏后延迟多少帧再恢复窗口大小
// 窗口管理器处理全屏切换期间立即设置的窗口大小会丢失
const windowSizeResetDelay = 3

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
// 徽标加载失败是致命错误：返回的 error 即诊断信息，调用方应以非零状态退出。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	menuConfig, err := config.LoadMenuConfig(cfg.MenuConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load menu config: %w", err)
	}
	if cfg.LogoPath != "" {
		menuConfig.Logo.Path = cfg.LogoPath
	}

	settings := newSettingsManager(menuConfig.PersistSettings)

	logo, err := game.LoadTexture(menuConfig.Logo.Path)
	if err != nil {
		return nil, fmt.Errorf("load logo: %w", err)
	}

	if settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	log.Printf("[App] Menu initialized (logo=%s, persist=%v)", menuConfig.Logo.Path, settings.Persistent())

	return &App{
		menuConfig: menuConfig,
		settings:   settings,
		logo:       logo,
		scene:      scenes.NewMenuScene(menuConfig, logo),
	}, nil
}

// newSettingsManager 创建设置管理器
// 未开启持久化或存储打开失败时以降级模式运行
func newSettingsManager(persist bool) *game.SettingsManager {
	if !persist {
		return game.NewSettingsManager(nil)
	}

	storage, err := game.OpenSettingsStorage()
	if err != nil {
		log.Printf("[App] Warning: %v (settings will not persist)", err)
		return game.NewSettingsManager(nil)
	}
	return game.NewSettingsManager(storage)
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.windowSizeResetDue() {
		ebiten.SetWindowSize(a.menuConfig.Window.Width, a.menuConfig.Window.Height)
		log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.menuConfig.Window.Width, a.menuConfig.Window.Height)
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / 60.0
	a.scene.Update(deltaTime)
	return nil
}

// toggleFullscreen 切换全屏并保存偏好
func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)
	if !fullscreen {
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.scheduleWindowSizeReset()
		log.Printf("[App] Exit fullscreen, will reset window size in %d frames", windowSizeResetDelay)
	}

	a.settings.SetFullscreen(fullscreen)
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
	log.Printf("[App] Fullscreen: %v", fullscreen)
}

// scheduleWindowSizeReset 安排在若干帧后恢复配置中的窗口大小
func (a *App) scheduleWindowSizeReset() {
	a.pendingWindowSizeReset = true
	a.windowSizeResetCountdown = windowSizeResetDelay
}

// windowSizeResetDue 推进倒计时，倒计时结束的那一帧返回 true（只返回一次）
func (a *App) windowSizeResetDue() bool {
	if !a.pendingWindowSizeReset {
		return false
	}
	a.windowSizeResetCountdown--
	if a.windowSizeResetCountdown > 0 {
		return false
	}
	a.pendingWindowSizeReset = false
	return true
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.scene.Draw(screen)
}

// Layout 返回逻辑屏幕尺寸
//
// 逻辑尺寸直接使用窗口尺寸，每帧查询，不做缩放。
// 窗口尺寸为 0（如最小化）时返回配置中的尺寸，避免返回非法值。
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.scene.SetLayoutSize(outsideWidth, outsideHeight)
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return a.menuConfig.Window.Width, a.menuConfig.Window.Height
	}
	return outsideWidth, outsideHeight
}

// MenuConfig 返回生效的菜单配置
func (a *App) MenuConfig() *config.MenuConfig {
	return a.menuConfig
}

// Close 释放纹理
// 程序退出前调用一次，重复调用是安全的
func (a *App) Close() {
	a.logo.Release()
	a.logo = nil
}
