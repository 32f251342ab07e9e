// Command glmenu 显示一个最小的菜单屏幕：一张徽标和一个可悬停的 "Play" 按钮。
//
// 用法:
//
//	go run . [-verbose] [-config menu.yaml] [-logo logo.png]
//
// 窗口关闭时以状态 0 退出；任何初始化失败都会在标准错误输出原因并以 -1 退出。
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decker502/glmenu/pkg/app"
	"github.com/decker502/glmenu/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

// exitInitFailure 初始化失败时的退出状态
const exitInitFailure = -1

var (
	// 命令行参数
	verbose    = flag.Bool("verbose", false, "显示详细日志")
	configPath = flag.String("config", "", "菜单布局配置文件（默认使用内置配置）")
	logoPath   = flag.String("logo", "", "徽标图片路径（默认 logo.png）")
)

func main() {
	os.Exit(run())
}

func run() int {
	flag.Parse()

	// 初始化嵌入资源
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:        *verbose,
		MenuConfigPath: *configPath,
		LogoPath:       *logoPath,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitInitFailure
	}
	defer gameApp.Close()

	// 设置窗口属性
	window := gameApp.MenuConfig().Window
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)

	// 启动主循环，窗口关闭时返回 nil
	if err := ebiten.RunGame(gameApp); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create window: %v\n", err)
		return exitInitFailure
	}

	return 0
}
