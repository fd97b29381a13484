package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/starcatch/pkg/components"
	"github.com/gonewx/starcatch/pkg/game"
	"github.com/gonewx/starcatch/pkg/systems"
)

// hudRows 顶部状态栏占用的行数
const hudRows = 1

// cellOf 将世界坐标映射到终端格子
//
// 参数:
//   - x, y: 世界坐标
//   - worldW, worldH: 世界尺寸
//   - cols, rows: 终端可用于绘制场地的列数和行数
//
// 返回:
//   - col, row: 格子坐标，已夹到 [0, cols) 与 [0, rows)
func cellOf(x, y, worldW, worldH float64, cols, rows int) (int, int) {
	if cols <= 0 || rows <= 0 || worldW <= 0 || worldH <= 0 {
		return 0, 0
	}
	col := int(x / worldW * float64(cols))
	row := int(y / worldH * float64(rows))
	return clampInt(col, 0, cols-1), clampInt(row, 0, rows-1)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// glyphFor 返回实体的字符和样式
func glyphFor(sp systems.SpriteView) (rune, tcell.Style) {
	switch sp.Group {
	case components.GroupPlayer:
		style := tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
		if sp.Tinted {
			style = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
		}
		switch sp.Animation {
		case components.AnimLeft:
			return '<', style
		case components.AnimRight:
			return '>', style
		default:
			return '@', style
		}
	case components.GroupPlatform:
		return '=', tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case components.GroupCollectible:
		return '*', tcell.StyleDefault.Foreground(tcell.ColorYellow)
	case components.GroupHazard:
		return 'o', tcell.StyleDefault.Foreground(tcell.ColorRed)
	case components.GroupProjectile:
		return '|', tcell.StyleDefault.Foreground(tcell.ColorWhite)
	default:
		return '?', tcell.StyleDefault
	}
}

// drawText 在指定行写一段文本
func drawText(screen tcell.Screen, col, row int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		screen.SetContent(col+i, row, r, nil, style)
	}
}

// drawRun 绘制一局的场地和状态栏
func drawRun(screen tcell.Screen, v systems.View) {
	cols, rows := screen.Size()
	fieldRows := rows - hudRows

	hud := fmt.Sprintf(" score: %d  waves: %d  bombs: %d  [%s]", v.Score, v.Waves, v.Hazards, v.Phase)
	drawText(screen, 0, 0, tcell.StyleDefault.Reverse(true), hud)

	for _, sp := range v.Sprites {
		ch, style := glyphFor(sp)
		if sp.Group == components.GroupPlatform {
			// 平台按宽度铺满
			left, row := cellOf(sp.X-sp.Width/2, sp.Y-sp.Height/2, v.Width, v.Height, cols, fieldRows)
			right, _ := cellOf(sp.X+sp.Width/2-1, sp.Y, v.Width, v.Height, cols, fieldRows)
			for c := left; c <= right; c++ {
				screen.SetContent(c, row+hudRows, ch, nil, style)
			}
			continue
		}
		col, row := cellOf(sp.X, sp.Y, v.Width, v.Height, cols, fieldRows)
		screen.SetContent(col, row+hudRows, ch, nil, style)
	}

	if v.Phase == game.RunPhaseEnded {
		drawText(screen, cols/2-5, rows/2, tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true), "GAME OVER")
	}
}

// drawMenu 绘制开始界面
func drawMenu(screen tcell.Screen, records game.RunRecords) {
	cols, rows := screen.Size()
	lines := []string{
		"STAR CATCH",
		"",
		"arrows / wasd  move and jump",
		"space          fire (costs 1 point)",
		"",
		"press Enter to start, q to quit",
		"",
		fmt.Sprintf("best: %d  last: %d  runs: %d", records.BestScore, records.LastScore, records.RunsPlayed),
	}
	top := rows/2 - len(lines)/2
	for i, line := range lines {
		style := tcell.StyleDefault
		if i == 0 {
			style = style.Foreground(tcell.ColorYellow).Bold(true)
		}
		drawText(screen, cols/2-len(line)/2, top+i, style, line)
	}
}
