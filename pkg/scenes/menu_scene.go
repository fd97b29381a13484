package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/gonewx/starcatch/pkg/config"
	"github.com/gonewx/starcatch/pkg/game"
	"github.com/gonewx/starcatch/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 开始按钮（中心点 400,200）
const (
	startButtonX      = 400
	startButtonY      = 200
	startButtonWidth  = 180
	startButtonHeight = 56
)

// menuLegend 按键说明
var menuLegend = []string{
	"LEFT  / A  - move left",
	"RIGHT / D  - move right",
	"UP    / W  - jump",
	"SPACE      - fire (costs 1 point)",
}

// MenuScene 开始界面
//
// 按 Enter 或点击开始按钮进入关卡，同时展示按键说明和历史成绩。
type MenuScene struct {
	sceneManager *game.SceneManager
	records      *game.RecordManager

	elapsed       float64
	buttonPressed bool
}

// NewMenuScene 创建开始界面
//
// 参数:
//   - sm: 场景管理器
//   - records: 成绩管理器，可为 nil（不显示成绩）
func NewMenuScene(sm *game.SceneManager, records *game.RecordManager) *MenuScene {
	return &MenuScene{
		sceneManager: sm,
		records:      records,
	}
}

// Update 处理开始输入
func (m *MenuScene) Update(deltaTime float64) {
	m.elapsed += deltaTime

	if utils.AnyKeyJustPressed(ebiten.KeyEnter, ebiten.KeyNumpadEnter) {
		m.start("enter")
		return
	}

	if clicked, x, y := utils.IsJustTouchedOrClicked(); clicked && insideStartButton(x, y) {
		m.buttonPressed = true
		m.start("pointer")
		return
	}
	m.buttonPressed = false
}

func (m *MenuScene) start(source string) {
	log.Printf("[MenuScene] Start requested via %s", source)
	if m.sceneManager != nil {
		m.sceneManager.Start(game.SceneLevel)
	}
}

// insideStartButton 判断屏幕坐标是否落在开始按钮内
func insideStartButton(x, y int) bool {
	left := startButtonX - startButtonWidth/2
	top := startButtonY - startButtonHeight/2
	return x >= left && x < left+startButtonWidth && y >= top && y < top+startButtonHeight
}

// Draw 绘制开始界面
func (m *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(colorMenuBg)

	ebitenutil.DebugPrintAt(screen, config.GameWindowTitle, startButtonX-30, 80)

	// 开始按钮
	buttonColor := color.RGBA{R: 250, G: 210, B: 40, A: 255}
	if m.buttonPressed {
		buttonColor = color.RGBA{R: 176, G: 224, B: 230, A: 255}
	}
	vector.DrawFilledRect(
		screen,
		float32(startButtonX-startButtonWidth/2),
		float32(startButtonY-startButtonHeight/2),
		startButtonWidth,
		startButtonHeight,
		buttonColor,
		false,
	)
	ebitenutil.DebugPrintAt(screen, "START", startButtonX-15, startButtonY-8)

	// 提示文字闪烁
	if utils.Pulse(m.elapsed, 1.2) > 0.25 {
		hint := "press ENTER"
		if utils.IsMobile() {
			hint = "tap START"
		}
		ebitenutil.DebugPrintAt(screen, hint, startButtonX-35, startButtonY+40)
	}

	// 按键说明
	vector.DrawFilledRect(screen, 180, 280, 440, 140, colorMenuPanel, false)
	for i, line := range menuLegend {
		ebitenutil.DebugPrintAt(screen, line, 200, 296+i*28)
	}
	if utils.IsMobile() {
		ebitenutil.DebugPrintAt(screen, "touch: left/right thirds move, top middle jumps, bottom middle fires", 90, 430)
	}

	m.drawRecords(screen)
}

func (m *MenuScene) drawRecords(screen *ebiten.Image) {
	if m.records == nil {
		return
	}
	rec := m.records.Records()
	if rec.RunsPlayed == 0 {
		return
	}
	line := fmt.Sprintf("best: %d   last: %d   runs: %d", rec.BestScore, rec.LastScore, rec.RunsPlayed)
	ebitenutil.DebugPrintAt(screen, line, 280, 480)
}
