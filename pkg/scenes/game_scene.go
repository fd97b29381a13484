package scenes

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/gonewx/starcatch/pkg/components"
	"github.com/gonewx/starcatch/pkg/config"
	"github.com/gonewx/starcatch/pkg/game"
	"github.com/gonewx/starcatch/pkg/systems"
	"github.com/gonewx/starcatch/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GameScene 关卡场景
//
// 只负责采集输入和绘制 View，规则全部由 systems.Simulation 处理。
// 碰到炸弹后 Simulation 在延迟到期时通过 SceneManager 回到菜单。
type GameScene struct {
	sceneManager *game.SceneManager
	records      *game.RecordManager
	sim          *systems.Simulation

	endedFor float64 // 结束后经过的时间（秒），用于淡入结束画面
	newBest  bool
}

// NewGameScene 创建关卡场景并立即开始新的一局
//
// 参数:
//   - sm: 场景管理器（结束后的菜单迁移目标），可为 nil
//   - cfg: 关卡配置
//   - records: 成绩管理器，可为 nil
//   - rng: 随机数源
func NewGameScene(sm *game.SceneManager, cfg *config.LevelConfig, records *game.RecordManager, rng *rand.Rand) *GameScene {
	s := &GameScene{
		sceneManager: sm,
		records:      records,
	}

	var menu systems.MenuTransition
	if sm != nil {
		menu = sm
	}
	s.sim = systems.NewSimulation(cfg, rng, menu)
	s.sim.OnRunEnded(func(score int) {
		if s.records != nil {
			s.newBest = s.records.Submit(score)
		}
	})

	if err := s.sim.Start(); err != nil {
		log.Printf("[GameScene] Error: %v", err)
	}
	return s
}

// Simulation 返回场景驱动的模拟控制器
func (s *GameScene) Simulation() *systems.Simulation {
	return s.sim
}

// Update 采集输入并推进一帧
func (s *GameScene) Update(deltaTime float64) {
	in := pollKeyboard()
	in = applyTouchZones(in, utils.ActiveZones(config.GameWindowWidth, config.GameWindowHeight))

	s.sim.Update(deltaTime, in)

	if s.sim.Phase() == game.RunPhaseEnded {
		s.endedFor += deltaTime
	}
}

// pollKeyboard 读取方向键/WASD 和空格
func pollKeyboard() systems.InputSnapshot {
	return systems.InputSnapshot{
		Left:  utils.AnyKeyPressed(ebiten.KeyArrowLeft, ebiten.KeyA),
		Right: utils.AnyKeyPressed(ebiten.KeyArrowRight, ebiten.KeyD),
		Up:    utils.AnyKeyPressed(ebiten.KeyArrowUp, ebiten.KeyW),
		Fire:  utils.AnyKeyPressed(ebiten.KeySpace),
	}
}

// applyTouchZones 把按住的触摸区域合并进按键状态
func applyTouchZones(in systems.InputSnapshot, zones []utils.TouchZone) systems.InputSnapshot {
	for _, z := range zones {
		switch z {
		case utils.TouchZoneLeft:
			in.Left = true
		case utils.TouchZoneRight:
			in.Right = true
		case utils.TouchZoneUp:
			in.Up = true
		case utils.TouchZoneFire:
			in.Fire = true
		}
	}
	return in
}

// Draw 绘制关卡
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(colorSky)

	view := s.sim.View()
	for _, sp := range view.Sprites {
		drawSprite(screen, sp)
	}

	s.drawHUD(screen, view)
	if view.Phase == game.RunPhaseEnded {
		s.drawGameOver(screen, view)
	}
}

// drawSprite 按分组绘制一个实体（坐标为中心点）
func drawSprite(screen *ebiten.Image, sp systems.SpriteView) {
	left := float32(sp.X - sp.Width/2)
	top := float32(sp.Y - sp.Height/2)
	w, h := float32(sp.Width), float32(sp.Height)
	clr := spriteColor(sp.Group, sp.Tinted)

	switch sp.Group {
	case components.GroupCollectible, components.GroupHazard, components.GroupProjectile:
		r := w / 2
		if h/2 < r {
			r = h / 2
		}
		vector.DrawFilledCircle(screen, float32(sp.X), float32(sp.Y), r, clr, true)

	case components.GroupPlatform:
		vector.DrawFilledRect(screen, left, top, w, h, clr, false)
		vector.DrawFilledRect(screen, left, top, w, 4, colorPlatformHi, false)

	case components.GroupPlayer:
		vector.DrawFilledRect(screen, left, top, w, h, clr, false)
		// 眼睛朝向跟随动画
		eyeX := float32(sp.X) - 3
		switch sp.Animation {
		case components.AnimLeft:
			eyeX -= 8
		case components.AnimRight:
			eyeX += 8
		}
		vector.DrawFilledRect(screen, eyeX, top+10, 6, 6, colorHUDPanel, false)

	default:
		vector.DrawFilledRect(screen, left, top, w, h, clr, false)
	}
}

func (s *GameScene) drawHUD(screen *ebiten.Image, view systems.View) {
	vector.DrawFilledRect(screen, 8, 8, 150, 40, colorHUDPanel, false)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", view.Score), 16, 12)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Wave: %d  Bombs: %d", view.Waves+1, view.Hazards), 16, 28)
}

func (s *GameScene) drawGameOver(screen *ebiten.Image, view systems.View) {
	delay := s.sim.Config().GameOverDelay().Seconds()
	progress := 1.0
	if delay > 0 {
		progress = utils.EaseOutCubic(s.endedFor / delay)
	}

	overlay := colorOverlay
	overlay.A = uint8(90 * progress)
	vector.DrawFilledRect(screen, 0, 0, float32(view.Width), float32(view.Height), overlay, false)

	msg := fmt.Sprintf("GAME OVER  score: %d", view.Score)
	if s.newBest {
		msg += "  NEW BEST!"
	}
	ebitenutil.DebugPrintAt(screen, msg, int(view.Width/2)-70, int(view.Height/2))
}
