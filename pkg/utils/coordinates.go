// Package utils 提供菜单渲染中常用的工具函数
//
// coordinates.go 提供坐标转换工具，用于在窗口像素坐标与归一化设备坐标之间换算。
//
// # 坐标系统概述
//
// 本项目使用以下坐标系统：
//   - **屏幕坐标**：相对于窗口左上角，单位为像素，Y 轴向下
//   - **归一化设备坐标（NDC）**：[-1,1]×[-1,1]，原点在窗口中心，Y 轴向上
//
// # 核心转换公式
//
// 屏幕坐标 → NDC（光标归一化）：
//
//	x' = 2·x/width − 1
//	y' = 2·(height−y)/height − 1
//
// NDC → 屏幕坐标（绘制）：
//
//	sx = (x + 1) / 2 · width
//	sy = (1 − y) / 2 · height
package utils

import (
	"github.com/decker502/glmenu/pkg/config"
)

// NormalizeCursor 将光标的像素坐标转换为 NDC
//
// 垂直方向会翻转，使 Y 轴与绘制坐标系一致（向上为正）。
// width 或 height 不为正时结果未定义，调用方需保证窗口尺寸有效。
func NormalizeCursor(px, py float64, width, height int) (x, y float64) {
	w := float64(width)
	h := float64(height)
	x = px/w*2 - 1
	y = (h-py)/h*2 - 1
	return x, y
}

// NDCToScreen 将 NDC 坐标转换为屏幕像素坐标
func NDCToScreen(x, y float64, width, height int) (sx, sy float64) {
	sx = (x + 1) / 2 * float64(width)
	sy = (1 - y) / 2 * float64(height)
	return sx, sy
}

// RectToScreen 将 NDC 矩形转换为屏幕矩形
//
// 返回：
//   - x, y: 矩形左上角的屏幕坐标
//   - w, h: 矩形的像素宽高
func RectToScreen(r config.Rect, width, height int) (x, y, w, h float64) {
	// NDC 中 MaxY 是上边，映射到屏幕后变成较小的 y
	x, y = NDCToScreen(r.MinX, r.MaxY, width, height)
	x2, y2 := NDCToScreen(r.MaxX, r.MinY, width, height)
	return x, y, x2 - x, y2 - y
}
