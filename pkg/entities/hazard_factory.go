package entities

import (
	"fmt"
	"log"

	"github.com/gonewx/starcatch/pkg/components"
	"github.com/gonewx/starcatch/pkg/config"
	"github.com/gonewx/starcatch/pkg/ecs"
	"github.com/gonewx/starcatch/pkg/physics"
)

// NewHazard 创建炸弹实体
// 炸弹完全弹性（bounce=1）、不受重力、被世界边界阻挡
//
// 参数:
//   - w: 物理世界
//   - cfg: 炸弹配置
//   - x: 生成位置 X（Y 固定为 cfg.SpawnY）
//   - vx: 初始水平速度
//   - wave: 已完成的波次数
//
// 返回:
//   - ecs.EntityID: 炸弹实体ID
//   - error: 物理世界为 nil 时返回错误
func NewHazard(w *physics.World, cfg config.HazardConfig, x, vx float64, wave int) (ecs.EntityID, error) {
	if w == nil {
		return 0, fmt.Errorf("physics world cannot be nil")
	}

	id := w.CreateBody(components.GroupHazard, x, cfg.SpawnY, cfg.Width, cfg.Height)
	w.SetBounce(id, 1, 1)
	w.SetAllowGravity(id, false)
	w.SetGravity(id, 0)
	w.SetCollideWorldBounds(id, true, false)
	w.SetVelocity(id, vx, cfg.VelocityY)

	ecs.AddComponent(w.EntityManager(), id, &components.HazardComponent{Wave: wave})

	log.Printf("[HazardFactory] Created hazard %d at (%.1f, %.1f) velocity (%.1f, %.1f)",
		id, x, cfg.SpawnY, vx, cfg.VelocityY)
	return id, nil
}
