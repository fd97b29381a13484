package systems

import (
	"math/rand"
	"testing"

	"github.com/gonewx/starcatch/pkg/components"
	"github.com/gonewx/starcatch/pkg/config"
	"github.com/gonewx/starcatch/pkg/ecs"
	"github.com/gonewx/starcatch/pkg/entities"
	"github.com/gonewx/starcatch/pkg/game"
	"github.com/gonewx/starcatch/pkg/physics"
)

const testFrame = 1.0 / 60.0

// newTestRand 固定种子的随机数源
func newTestRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

// newTestWorld 创建默认尺寸的物理世界
func newTestWorld() *physics.World {
	cfg := config.DefaultLevelConfig()
	return physics.NewWorld(ecs.NewEntityManager(), cfg.World.Width, cfg.World.Height, cfg.World.Gravity)
}

// newTestShooter 创建玩家和记分器
func newTestShooter(t *testing.T, w *physics.World) (ecs.EntityID, *game.ScoreTracker) {
	t.Helper()
	player, err := entities.NewPlayer(w, config.DefaultLevelConfig().Player)
	if err != nil {
		t.Fatalf("NewPlayer() error: %v", err)
	}
	return player, game.NewScoreTracker()
}

// startTestSimulation 创建并开始一局
func startTestSimulation(t *testing.T, menu MenuTransition) *Simulation {
	t.Helper()
	sim := NewSimulation(config.DefaultLevelConfig(), newTestRand(), menu)
	if err := sim.Start(); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	return sim
}

func positionOf(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.PositionComponent {
	t.Helper()
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		t.Fatalf("entity %d has no position", id)
	}
	return pos
}

func velocityOf(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.VelocityComponent {
	t.Helper()
	vel, ok := ecs.GetComponent[*components.VelocityComponent](em, id)
	if !ok {
		t.Fatalf("entity %d has no velocity", id)
	}
	return vel
}

func playerOf(t *testing.T, run *RunState) *components.PlayerComponent {
	t.Helper()
	player, ok := ecs.GetComponent[*components.PlayerComponent](run.EntityManager, run.Player)
	if !ok {
		t.Fatal("player component missing")
	}
	return player
}

// placeOnPlayer 把实体移到玩家位置并停止运动
func placeOnPlayer(t *testing.T, run *RunState, id ecs.EntityID) {
	t.Helper()
	player := positionOf(t, run.EntityManager, run.Player)
	pos := positionOf(t, run.EntityManager, id)
	pos.X, pos.Y = player.X, player.Y
	run.World.SetVelocity(id, 0, 0)
	run.World.SetVelocity(run.Player, 0, 0)
}
