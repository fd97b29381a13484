package systems

import (
	"log"
	"time"

	"github.com/gonewx/starcatch/pkg/components"
	"github.com/gonewx/starcatch/pkg/config"
	"github.com/gonewx/starcatch/pkg/ecs"
	"github.com/gonewx/starcatch/pkg/entities"
	"github.com/gonewx/starcatch/pkg/game"
	"github.com/gonewx/starcatch/pkg/physics"
)

// FireSystem 子弹发射限流
//
// 发射条件：
//   - 分数大于 0 且足够支付 cost
//   - 距离上一次成功发射不少于 cooldown（本局第一次发射不受限制）
//
// 被拒绝的发射是正常情况，不记录日志也不返回错误。
type FireSystem struct {
	world   *physics.World
	score   *game.ScoreTracker
	cfg     config.ProjectileConfig
	shooter ecs.EntityID

	cooldown time.Duration
	lastFire time.Duration
	hasFired bool

	lastProjectile ecs.EntityID
	shots          int
}

// NewFireSystem 创建发射系统
//
// 参数:
//   - w: 物理世界
//   - score: 本局记分器，成功发射时扣分
//   - cfg: 子弹参数
//   - shooter: 发射者（玩家），子弹从它的当前位置射出
func NewFireSystem(w *physics.World, score *game.ScoreTracker, cfg config.ProjectileConfig, shooter ecs.EntityID) *FireSystem {
	return &FireSystem{
		world:    w,
		score:    score,
		cfg:      cfg,
		shooter:  shooter,
		cooldown: cfg.Cooldown(),
	}
}

// CanFire 检查在 now 时刻发射是否会被接受（不产生副作用）
func (s *FireSystem) CanFire(now time.Duration) bool {
	if s.world == nil || s.score == nil {
		return false
	}
	if !s.score.CanSpend(s.cfg.Cost) {
		return false
	}
	if s.hasFired && now-s.lastFire < s.cooldown {
		return false
	}
	return true
}

// TryFire 尝试在 now 时刻朝 dir 发射一颗子弹
//
// 成功时在发射者当前位置创建子弹、记录发射时间并扣除 cost。
//
// 返回:
//   - bool: 是否成功发射
func (s *FireSystem) TryFire(dir components.Direction, now time.Duration) bool {
	if !s.CanFire(now) {
		return false
	}

	pos, ok := ecs.GetComponent[*components.PositionComponent](s.world.EntityManager(), s.shooter)
	if !ok {
		return false
	}

	id, err := entities.NewProjectile(s.world, s.cfg, pos.X, pos.Y, dir)
	if err != nil {
		log.Printf("[FireSystem] Failed to create projectile: %v", err)
		return false
	}

	s.lastFire = now
	s.hasFired = true
	s.lastProjectile = id
	s.shots++
	s.score.Spend(s.cfg.Cost)
	return true
}

// LastFire 返回上一次成功发射的时间，从未发射时第二个返回值为 false
func (s *FireSystem) LastFire() (time.Duration, bool) {
	return s.lastFire, s.hasFired
}

// LastProjectile 返回最近一次发射的子弹实体
func (s *FireSystem) LastProjectile() ecs.EntityID {
	return s.lastProjectile
}

// Shots 返回本局成功发射的次数
func (s *FireSystem) Shots() int {
	return s.shots
}
