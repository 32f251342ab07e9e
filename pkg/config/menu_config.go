package config

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/decker502/glmenu/pkg/embedded"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// DefaultMenuConfigPath 是嵌入的默认菜单配置路径
const DefaultMenuConfigPath = "data/menu.yaml"

// ErrInvalidColor 表示配置中的颜色字符串无法解析
var ErrInvalidColor = errors.New("invalid color")

// Rect 是归一化设备坐标（NDC）中的轴对齐矩形
//
// NDC 范围为 [-1,1]×[-1,1]，X 轴向右、Y 轴向上，与窗口像素尺寸无关。
type Rect struct {
	MinX float64 `yaml:"min_x"`
	MinY float64 `yaml:"min_y"`
	MaxX float64 `yaml:"max_x"`
	MaxY float64 `yaml:"max_y"`
}

// Contains 判断点 (x, y) 是否在矩形内
// 四条边都是闭区间，边界上的点视为在矩形内
func (r Rect) Contains(x, y float64) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// LogoConfig 徽标配置
type LogoConfig struct {
	Path string `yaml:"path"` // 图片路径，相对于工作目录
	Rect Rect   `yaml:"rect"` // 徽标四边形覆盖的 NDC 区域
}

// ButtonConfig "Play" 按钮配置
type ButtonConfig struct {
	Rect       Rect    `yaml:"rect"`
	Label      string  `yaml:"label"`
	LabelX     float64 `yaml:"label_x"` // 文本基线左端 X（NDC）
	LabelY     float64 `yaml:"label_y"` // 文本基线 Y（NDC）
	HoverColor string  `yaml:"hover_color"`
	IdleColor  string  `yaml:"idle_color"`
	LabelColor string  `yaml:"label_color"`
}

// MenuConfig 菜单屏幕的完整配置
//
// 对应 data/menu.yaml：
//
//	window:
//	  width: 800
//	  height: 600
//	  title: OpenGL Menu
//	logo:
//	  path: logo.png
//	  rect: { min_x: -0.5, min_y: -0.5, max_x: 0.5, max_y: 0.5 }
//	button:
//	  rect: { min_x: -0.2, min_y: -0.8, max_x: 0.2, max_y: -0.7 }
//	  ...
type MenuConfig struct {
	Window          WindowConfig `yaml:"window"`
	Background      string       `yaml:"background"`
	Logo            LogoConfig   `yaml:"logo"`
	Button          ButtonConfig `yaml:"button"`
	PersistSettings bool         `yaml:"persist_settings"` // 是否通过 gdata 持久化设置（默认关闭）
}

// DefaultMenuConfig 返回默认菜单配置
// 与 data/menu.yaml 保持一致
func DefaultMenuConfig() *MenuConfig {
	return &MenuConfig{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "OpenGL Menu",
		},
		Background: "#000000",
		Logo: LogoConfig{
			Path: "logo.png",
			Rect: Rect{MinX: -0.5, MinY: -0.5, MaxX: 0.5, MaxY: 0.5},
		},
		Button: ButtonConfig{
			Rect:       Rect{MinX: -0.2, MinY: -0.8, MaxX: 0.2, MaxY: -0.7},
			Label:      "Play",
			LabelX:     -0.05,
			LabelY:     -0.75,
			HoverColor: "#ffffff",
			IdleColor:  "#808080",
			LabelColor: "#ffffff",
		},
		PersistSettings: false,
	}
}

// ParseMenuConfig 解析 YAML 配置，未出现的字段保留默认值
func ParseMenuConfig(data []byte) (*MenuConfig, error) {
	cfg := DefaultMenuConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse menu config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadMenuConfig 加载菜单配置
//
// 参数：
//   - path: 配置文件路径；为空时读取嵌入的 data/menu.yaml，
//     embedded 包未初始化时直接返回默认配置
//
// 返回：
//   - *MenuConfig: 合并了默认值的配置
//   - error: 读取、解析或校验失败时返回错误
func LoadMenuConfig(path string) (*MenuConfig, error) {
	var (
		data []byte
		err  error
	)

	if path == "" {
		if !embedded.IsInitialized() {
			log.Printf("[Config] embedded not initialized, using built-in defaults")
			return DefaultMenuConfig(), nil
		}
		data, err = embedded.ReadFile(DefaultMenuConfigPath)
		path = DefaultMenuConfigPath
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read menu config %s: %w", path, err)
	}

	cfg, err := ParseMenuConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.Printf("[Config] 加载菜单配置: %s", path)
	return cfg, nil
}

// Validate 校验配置的合法性
func (c *MenuConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Logo.Path == "" {
		return errors.New("logo path must not be empty")
	}

	rects := []struct {
		name string
		rect Rect
	}{
		{"logo.rect", c.Logo.Rect},
		{"button.rect", c.Button.Rect},
	}
	for _, r := range rects {
		if r.rect.MinX > r.rect.MaxX || r.rect.MinY > r.rect.MaxY {
			return fmt.Errorf("%s is degenerate: %+v", r.name, r.rect)
		}
	}

	for name, hex := range map[string]string{
		"background":         c.Background,
		"button.hover_color": c.Button.HoverColor,
		"button.idle_color":  c.Button.IdleColor,
		"button.label_color": c.Button.LabelColor,
	} {
		if _, err := ParseColor(hex); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	return nil
}

// ParseColor 将 "#rrggbb" 形式的十六进制字符串解析为不透明的 color.RGBA
func ParseColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w %q: %v", ErrInvalidColor, hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// MustParseColor 与 ParseColor 相同，但解析失败时 panic
// 仅用于已经通过 Validate 的配置
func MustParseColor(hex string) color.RGBA {
	c, err := ParseColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}
