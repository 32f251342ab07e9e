// Package scenes 提供菜单屏幕的更新与绘制逻辑
package scenes

import (
	"image/color"
	"log"

	"github.com/decker502/glmenu/pkg/config"
	"github.com/decker502/glmenu/pkg/game"
	"github.com/decker502/glmenu/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// buttonStrokeWidth 按钮边框线宽（像素）
const buttonStrokeWidth = 1

// MenuScene 菜单屏幕：一张徽标和一个可悬停的 "Play" 按钮
//
// 悬停状态每次 Update 都从当前指针位置重新计算，不跨帧保留。
type MenuScene struct {
	cfg  *config.MenuConfig
	logo *game.Texture

	labelFace *text.GoXFace

	background color.RGBA
	hoverColor color.RGBA
	idleColor  color.RGBA
	labelColor color.RGBA

	// 当前布局尺寸（像素），由 App.Layout 每帧更新
	width  int
	height int

	hovered bool

	// pointerPosition 返回指针的像素坐标，测试中可以替换
	pointerPosition func() (int, int)
}

// NewMenuScene 创建菜单场景
//
// 参数：
//   - cfg: 已通过 Validate 的菜单配置
//   - logo: 徽标纹理，调用方保证有效
func NewMenuScene(cfg *config.MenuConfig, logo *game.Texture) *MenuScene {
	return &MenuScene{
		cfg:             cfg,
		logo:            logo,
		labelFace:       text.NewGoXFace(basicfont.Face7x13),
		background:      config.MustParseColor(cfg.Background),
		hoverColor:      config.MustParseColor(cfg.Button.HoverColor),
		idleColor:       config.MustParseColor(cfg.Button.IdleColor),
		labelColor:      config.MustParseColor(cfg.Button.LabelColor),
		width:           cfg.Window.Width,
		height:          cfg.Window.Height,
		pointerPosition: utils.GetPointerPosition,
	}
}

// SetLayoutSize 更新当前窗口的像素尺寸
func (s *MenuScene) SetLayoutSize(width, height int) {
	s.width = width
	s.height = height
}

// Hovered 返回指针当前是否悬停在按钮上
func (s *MenuScene) Hovered() bool {
	return s.hovered
}

// Update 根据指针位置重新计算按钮悬停状态
func (s *MenuScene) Update(deltaTime float64) {
	if s.width <= 0 || s.height <= 0 {
		// 窗口最小化等情况下尺寸可能为 0
		s.hovered = false
		return
	}

	px, py := s.pointerPosition()
	x, y := utils.NormalizeCursor(float64(px), float64(py), s.width, s.height)

	hovered := s.cfg.Button.Rect.Contains(x, y)
	if hovered != s.hovered {
		log.Printf("[Menu] hover=%v at (%.3f, %.3f)", hovered, x, y)
	}
	s.hovered = hovered
}

// Draw 绘制一帧：清屏、徽标、按钮
func (s *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(s.background)

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	s.drawLogo(screen, w, h)
	s.drawButton(screen, w, h)
}

// drawLogo 将徽标纹理绘制到配置的 NDC 区域
func (s *MenuScene) drawLogo(screen *ebiten.Image, w, h int) {
	x, y, rw, rh := utils.RectToScreen(s.cfg.Logo.Rect, w, h)
	s.logo.DrawQuad(screen, float32(x), float32(y), float32(rw), float32(rh))
}

// drawButton 绘制按钮边框（不填充）和文本
func (s *MenuScene) drawButton(screen *ebiten.Image, w, h int) {
	clr := s.idleColor
	if s.hovered {
		clr = s.hoverColor
	}

	x, y, rw, rh := utils.RectToScreen(s.cfg.Button.Rect, w, h)
	vector.StrokeRect(screen, float32(x), float32(y), float32(rw), float32(rh), buttonStrokeWidth, clr, false)

	s.drawLabel(screen, w, h)
}

// drawLabel 在按钮附近绘制文本
// 配置中的位置是文本基线左端，与光栅位置语义一致
func (s *MenuScene) drawLabel(screen *ebiten.Image, w, h int) {
	baseX, baseY := utils.NDCToScreen(s.cfg.Button.LabelX, s.cfg.Button.LabelY, w, h)

	op := &text.DrawOptions{}
	// text.Draw 以行顶为原点，需要减去 ascent 才能对齐基线
	op.GeoM.Translate(baseX, baseY-s.labelFace.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(s.labelColor)
	text.Draw(screen, s.cfg.Button.Label, s.labelFace, op)
}
