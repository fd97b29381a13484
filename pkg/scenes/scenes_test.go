package scenes

import (
	"fmt"
	"testing"

	"github.com/gonewx/starcatch/pkg/components"
	"github.com/gonewx/starcatch/pkg/config"
	"github.com/gonewx/starcatch/pkg/ecs"
	"github.com/gonewx/starcatch/pkg/game"
	"github.com/gonewx/starcatch/pkg/systems"
	"github.com/gonewx/starcatch/pkg/utils"
)

func TestInsideStartButton(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{name: "按钮中心", x: 400, y: 200, want: true},
		{name: "左上角", x: 310, y: 172, want: true},
		{name: "右边界外", x: 490, y: 200, want: false},
		{name: "上方", x: 400, y: 100, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := insideStartButton(tt.x, tt.y); got != tt.want {
				t.Errorf("insideStartButton(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestApplyTouchZones(t *testing.T) {
	in := applyTouchZones(systems.InputSnapshot{Up: true}, []utils.TouchZone{utils.TouchZoneLeft, utils.TouchZoneFire})
	want := systems.InputSnapshot{Left: true, Up: true, Fire: true}
	if in != want {
		t.Errorf("applyTouchZones() = %+v, want %+v", in, want)
	}
}

func TestNewGameScene_StartsRun(t *testing.T) {
	sm := game.NewSceneManager()
	s := NewGameScene(sm, config.DefaultLevelConfig(), nil, nil)

	if s.Simulation().Phase() != game.RunPhasePlaying {
		t.Errorf("phase = %v, want playing", s.Simulation().Phase())
	}
	if got := len(s.Simulation().View().Sprites); got != 17 {
		t.Errorf("sprites = %d, want 17", got)
	}
}

func TestGameScene_SubmitsScoreOnGameOver(t *testing.T) {
	records, _ := game.NewRecordManager(nil)
	sm := game.NewSceneManager()
	menuStarted := 0
	sm.Register(game.SceneMenu, func() game.Scene {
		menuStarted++
		return NewMenuScene(sm, records)
	})

	s := NewGameScene(sm, config.DefaultLevelConfig(), records, nil)
	sim := s.Simulation()
	run := sim.Run()
	run.Score.Collect(30)

	if _, err := spawnHazardOnPlayer(run); err != nil {
		t.Fatalf("spawn hazard: %v", err)
	}

	// 直接驱动模拟，避开 ebiten 输入轮询
	sim.Update(1.0/60.0, systems.InputSnapshot{})
	if sim.Phase() != game.RunPhaseEnded {
		t.Fatalf("phase = %v, want ended", sim.Phase())
	}
	if rec := records.Records(); rec.BestScore != 30 || rec.RunsPlayed != 1 {
		t.Errorf("records = %+v, want best 30 after one run", rec)
	}
	if !s.newBest {
		t.Error("first run should be a new best")
	}

	for i := 0; i < 70; i++ {
		sim.Update(1.0/60.0, systems.InputSnapshot{})
	}
	if menuStarted != 1 || sm.CurrentName() != game.SceneMenu {
		t.Errorf("menu started %d times (current %q), want once", menuStarted, sm.CurrentName())
	}
}

// spawnHazardOnPlayer 在玩家位置放一颗静止的炸弹
func spawnHazardOnPlayer(run *systems.RunState) (ecs.EntityID, error) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](run.EntityManager, run.Player)
	if !ok {
		return 0, fmt.Errorf("player has no position")
	}
	id, err := run.Spawner.SpawnHazard(pos.X)
	if err != nil {
		return 0, err
	}
	run.World.EnableBody(id, pos.X, pos.Y)
	run.World.SetVelocity(run.Player, 0, 0)
	return id, nil
}
