// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GetPointerPosition 获取当前指针位置（触摸或鼠标）
// 优先返回触摸位置，如果没有触摸则返回鼠标位置
// 坐标为逻辑屏幕像素，原点在左上角
func GetPointerPosition() (int, int) {
	// 检查触摸
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		return ebiten.TouchPosition(touchIDs[0])
	}

	// 返回鼠标位置
	return ebiten.CursorPosition()
}
