// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// TouchZone 触摸/鼠标按住时对应的虚拟按键区域
type TouchZone int

const (
	// TouchZoneNone 不在任何区域内
	TouchZoneNone TouchZone = iota
	// TouchZoneLeft 屏幕左侧三分之一
	TouchZoneLeft
	// TouchZoneRight 屏幕右侧三分之一
	TouchZoneRight
	// TouchZoneUp 中间上半部分（跳跃）
	TouchZoneUp
	// TouchZoneFire 中间下半部分（发射）
	TouchZoneFire
)

// ZoneAt 计算屏幕坐标所在的虚拟按键区域
//
// 布局：
//
//	+-------+-------+-------+
//	|       |  Up   |       |
//	| Left  +-------+ Right |
//	|       | Fire  |       |
//	+-------+-------+-------+
func ZoneAt(x, y, width, height int) TouchZone {
	if width <= 0 || height <= 0 || x < 0 || y < 0 || x >= width || y >= height {
		return TouchZoneNone
	}
	third := width / 3
	switch {
	case x < third:
		return TouchZoneLeft
	case x >= width-third:
		return TouchZoneRight
	case y < height/2:
		return TouchZoneUp
	default:
		return TouchZoneFire
	}
}

// ActiveZones 返回所有按住的触摸点（以及按住的鼠标左键）所在的区域
// 支持多点触控：一只手按方向，另一只手发射
func ActiveZones(width, height int) []TouchZone {
	var zones []TouchZone
	for _, id := range ebiten.AppendTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		if z := ZoneAt(x, y, width, height); z != TouchZoneNone {
			zones = append(zones, z)
		}
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if z := ZoneAt(x, y, width, height); z != TouchZoneNone {
			zones = append(zones, z)
		}
	}
	return zones
}

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 返回是否点击以及点击位置
func IsJustTouchedOrClicked() (bool, int, int) {
	// 检查触摸
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	// 检查鼠标
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// AnyKeyPressed 任意一个键处于按下状态
func AnyKeyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// AnyKeyJustPressed 任意一个键在本帧刚刚按下
func AnyKeyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
