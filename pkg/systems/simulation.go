package systems

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/gonewx/starcatch/pkg/components"
	"github.com/gonewx/starcatch/pkg/config"
	"github.com/gonewx/starcatch/pkg/ecs"
	"github.com/gonewx/starcatch/pkg/entities"
	"github.com/gonewx/starcatch/pkg/game"
	"github.com/gonewx/starcatch/pkg/physics"
)

// MenuTransition 结束后接管控制权的菜单
type MenuTransition interface {
	ReturnToMenu()
}

// MenuTransitionFunc 函数适配器
type MenuTransitionFunc func()

// ReturnToMenu 调用 f
func (f MenuTransitionFunc) ReturnToMenu() { f() }

// RunState 一局的全部可变状态
// 每次 Start 都会重新创建，上一局的实体、分数和发射时钟不会带入新的一局
type RunState struct {
	EntityManager *ecs.EntityManager
	World         *physics.World
	Player        ecs.EntityID
	Platforms     []ecs.EntityID

	Score    *game.ScoreTracker
	Fire     *FireSystem
	Spawner  *SpawnSystem
	Resolver *CollisionResolver

	Generation uint64
	StartedAt  time.Duration
}

// Simulation 单局模拟控制器
//
// 每帧执行顺序：
//  1. 推进模拟时钟与调度器（到期的延迟迁移在此执行）
//  2. Playing 状态下按规则表处理移动和发射
//  3. 物理步进
//  4. 碰撞解析并应用事件
//
// Start 之前调用 Update 是空操作。
type Simulation struct {
	cfg       *config.LevelConfig
	rng       *rand.Rand
	scheduler *game.TickScheduler
	machine   *game.RunStateMachine
	menu      MenuTransition

	run *RunState
	now time.Duration

	onRunEnded func(score int)
}

// NewSimulation 创建模拟控制器
//
// 参数:
//   - cfg: 关卡配置，为 nil 时使用默认配置
//   - rng: 随机数源，为 nil 时使用固定种子
//   - menu: 结束延迟到期后调用的菜单迁移，可为 nil
func NewSimulation(cfg *config.LevelConfig, rng *rand.Rand, menu MenuTransition) *Simulation {
	if cfg == nil {
		cfg = config.DefaultLevelConfig()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	scheduler := game.NewTickScheduler()
	return &Simulation{
		cfg:       cfg,
		rng:       rng,
		scheduler: scheduler,
		machine:   game.NewRunStateMachine(scheduler),
		menu:      menu,
	}
}

// OnRunEnded 设置一局结束（碰到炸弹）时的回调，参数为最终分数
func (s *Simulation) OnRunEnded(fn func(score int)) {
	s.onRunEnded = fn
}

// Start 开始新的一局
// 重新创建玩家、平台和整波星星，分数、发射时钟和状态全部重置
func (s *Simulation) Start() error {
	run, err := s.newRunState()
	if err != nil {
		return fmt.Errorf("failed to start run: %w", err)
	}

	run.Generation = s.machine.Begin()
	run.StartedAt = s.now
	s.run = run

	log.Printf("[Simulation] Run %d started with %d collectibles", run.Generation, len(run.Spawner.Wave()))
	return nil
}

func (s *Simulation) newRunState() (*RunState, error) {
	cfg := s.cfg
	em := ecs.NewEntityManager()
	world := physics.NewWorld(em, cfg.World.Width, cfg.World.Height, cfg.World.Gravity)

	world.AddCollider(components.GroupPlayer, components.GroupPlatform)
	world.AddCollider(components.GroupCollectible, components.GroupPlatform)
	world.AddCollider(components.GroupHazard, components.GroupPlatform)
	world.AddCollider(components.GroupProjectile, components.GroupPlatform)
	world.AddOverlap(components.GroupPlayer, components.GroupCollectible)
	world.AddOverlap(components.GroupHazard, components.GroupProjectile)
	world.AddOverlap(components.GroupPlayer, components.GroupHazard)

	run := &RunState{
		EntityManager: em,
		World:         world,
		Score:         game.NewScoreTracker(),
	}

	for _, p := range cfg.Platforms {
		id, err := entities.NewPlatform(world, p)
		if err != nil {
			return nil, err
		}
		run.Platforms = append(run.Platforms, id)
	}

	player, err := entities.NewPlayer(world, cfg.Player)
	if err != nil {
		return nil, err
	}
	run.Player = player

	run.Spawner = NewSpawnSystem(world, cfg, s.rng)
	if err := run.Spawner.LayoutWave(); err != nil {
		return nil, err
	}

	run.Fire = NewFireSystem(world, run.Score, cfg.Projectiles, player)
	run.Resolver = NewCollisionResolver(world)
	return run, nil
}

// Update 推进一帧
//
// 参数:
//   - deltaTime: 帧间隔（秒）
//   - in: 本帧按键状态
func (s *Simulation) Update(deltaTime float64, in InputSnapshot) {
	if s.run == nil {
		return
	}
	if deltaTime < 0 {
		deltaTime = 0
	}

	s.now += time.Duration(deltaTime * float64(time.Second))
	s.scheduler.Advance(s.now)

	// 延迟迁移可能已经开始了新的一局
	run := s.run

	if s.machine.IsPlaying() {
		s.applyMovement(run, in)
	}

	contacts := run.World.Step(deltaTime)
	events := run.Resolver.Resolve(contacts)
	s.applyEvents(run, events)
}

// applyMovement 求值规则表并应用到玩家
func (s *Simulation) applyMovement(run *RunState, in InputSnapshot) {
	em := run.EntityManager
	body, ok := ecs.GetComponent[*components.BodyComponent](em, run.Player)
	if !ok {
		return
	}

	action, _ := EvaluateMovement(in, body.Grounded(), s.cfg.Player)

	// 先发射：子弹从玩家本帧移动前的位置射出
	if action.Fire {
		run.Fire.TryFire(action.FireDirection, s.now)
	}

	if action.SetVelocityX {
		run.World.SetVelocityX(run.Player, action.VelocityX)
	}
	if action.SetVelocityY {
		run.World.SetVelocityY(run.Player, action.VelocityY)
	}
	if action.SetAnimation {
		if player, ok := ecs.GetComponent[*components.PlayerComponent](em, run.Player); ok {
			player.Animation = action.Animation
		}
	}
}

// applyEvents 依次应用事件，结束后同批次剩余事件全部丢弃
func (s *Simulation) applyEvents(run *RunState, events []Event) {
	for _, ev := range events {
		if !s.machine.IsPlaying() {
			return
		}

		switch ev.Kind {
		case EventProjectileExpired:
			run.World.DisableBody(ev.Subject)

		case EventCollect:
			s.collect(run, ev.Subject)

		case EventMutualDespawn:
			if run.World.IsActive(ev.Subject) && run.World.IsActive(ev.Other) {
				run.World.DisableBody(ev.Subject)
				run.World.DisableBody(ev.Other)
			}

		case EventGameOver:
			s.endRun(run)
		}
	}
}

// collect 收集星星，整波清空时重生并生成炸弹
func (s *Simulation) collect(run *RunState, star ecs.EntityID) {
	if !run.World.DisableBody(star) {
		return
	}
	run.Score.Collect(s.cfg.Collectibles.Reward)

	if run.Spawner.ActiveCount() > 0 {
		return
	}

	run.Spawner.RespawnWave()
	playerX := 0.0
	if pos, ok := ecs.GetComponent[*components.PositionComponent](run.EntityManager, run.Player); ok {
		playerX = pos.X
	}
	if _, err := run.Spawner.SpawnHazard(playerX); err != nil {
		log.Printf("[Simulation] Warning: %v", err)
	}
}

// endRun 冻结物理、标记玩家被击中并安排返回菜单
func (s *Simulation) endRun(run *RunState) {
	world := run.World
	world.Pause()

	if player, ok := ecs.GetComponent[*components.PlayerComponent](run.EntityManager, run.Player); ok {
		player.Tinted = true
		player.Animation = components.AnimIdle
	}

	menu := s.menu
	ended := s.machine.End(s.cfg.GameOverDelay(), func() {
		world.Resume()
		if menu != nil {
			menu.ReturnToMenu()
		}
	})
	if !ended {
		return
	}

	log.Printf("[Simulation] Run %d over: score=%d", run.Generation, run.Score.Value())
	if s.onRunEnded != nil {
		s.onRunEnded(run.Score.Value())
	}
}

// Run 返回当前一局的状态，Start 之前为 nil
func (s *Simulation) Run() *RunState {
	return s.run
}

// Phase 返回当前状态
func (s *Simulation) Phase() game.RunPhase {
	return s.machine.Phase()
}

// Score 返回当前分数
func (s *Simulation) Score() int {
	if s.run == nil {
		return 0
	}
	return s.run.Score.Value()
}

// Now 返回模拟时钟
func (s *Simulation) Now() time.Duration {
	return s.now
}

// Config 返回关卡配置
func (s *Simulation) Config() *config.LevelConfig {
	return s.cfg
}

// Scheduler 返回驱动延迟迁移的调度器
func (s *Simulation) Scheduler() *game.TickScheduler {
	return s.scheduler
}
