// Package main 提供徽标检查工具
// 不创建窗口，只解码徽标并打印纹理上传参数，用于排查 "Failed to load texture"
//
// 用法:
//
//	go run ./cmd/check_logo [-config menu.yaml] [path]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decker502/glmenu/pkg/config"
	"github.com/decker502/glmenu/pkg/game"
)

var configPath = flag.String("config", "", "菜单布局配置文件（默认使用内置配置）")

func main() {
	flag.Parse()

	cfg, err := config.LoadMenuConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(-1)
	}

	path := cfg.Logo.Path
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	}

	decoded, err := game.DecodeImage(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(-1)
	}

	fmt.Printf("File:     %s\n", path)
	fmt.Printf("Format:   %s\n", decoded.Format)
	fmt.Printf("Size:     %dx%d\n", decoded.Width, decoded.Height)
	fmt.Printf("Channels: %d\n", decoded.Channels)
	fmt.Printf("Upload:   %s\n", game.UploadFormat(decoded.Channels))
	if decoded.Channels != 3 && decoded.Channels != 4 {
		fmt.Println("Warning:  channel count is neither 3 nor 4, alpha is dropped on upload")
	}
}
