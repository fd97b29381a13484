package scenes

import (
	"image/color"

	"github.com/gonewx/starcatch/pkg/components"
)

// 画面配色
var (
	colorSky        = color.RGBA{R: 120, G: 180, B: 235, A: 255}
	colorPlatform   = color.RGBA{R: 70, G: 150, B: 60, A: 255}
	colorPlatformHi = color.RGBA{R: 110, G: 190, B: 90, A: 255}
	colorPlayer     = color.RGBA{R: 150, G: 90, B: 200, A: 255}
	colorPlayerHit  = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	colorStar       = color.RGBA{R: 250, G: 210, B: 40, A: 255}
	colorBomb       = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	colorBullet     = color.RGBA{R: 255, G: 120, B: 30, A: 255}
	colorHUDPanel   = color.RGBA{R: 0, G: 0, B: 0, A: 120}
	colorOverlay    = color.RGBA{R: 120, G: 0, B: 0, A: 255}
	colorMenuBg     = color.RGBA{R: 30, G: 40, B: 70, A: 255}
	colorMenuPanel  = color.RGBA{R: 0, G: 0, B: 0, A: 140}
)

// spriteColor 按分组选择填充色
func spriteColor(group components.Group, tinted bool) color.Color {
	switch group {
	case components.GroupPlayer:
		if tinted {
			return colorPlayerHit
		}
		return colorPlayer
	case components.GroupPlatform:
		return colorPlatform
	case components.GroupCollectible:
		return colorStar
	case components.GroupHazard:
		return colorBomb
	case components.GroupProjectile:
		return colorBullet
	default:
		return color.White
	}
}
