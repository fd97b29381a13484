package entities

import (
	"fmt"

	"github.com/gonewx/starcatch/pkg/components"
	"github.com/gonewx/starcatch/pkg/config"
	"github.com/gonewx/starcatch/pkg/ecs"
	"github.com/gonewx/starcatch/pkg/physics"
)

// NewProjectile 创建子弹实体
//
// 优先复用已停用的子弹（原地重新激活），没有可用子弹时才创建新实体。
// 子弹不受重力，碰到世界边界时上报接触。
//
// 参数:
//   - w: 物理世界
//   - cfg: 子弹配置
//   - x, y: 发射位置（玩家当前位置）
//   - dir: 发射方向，速度只在该方向所在轴上非零
//
// 返回:
//   - ecs.EntityID: 子弹实体ID
//   - error: 物理世界为 nil 时返回错误
func NewProjectile(w *physics.World, cfg config.ProjectileConfig, x, y float64, dir components.Direction) (ecs.EntityID, error) {
	if w == nil {
		return 0, fmt.Errorf("physics world cannot be nil")
	}
	em := w.EntityManager()

	id, reused := findIdleProjectile(w)
	if reused {
		w.EnableBody(id, x, y)
	} else {
		id = w.CreateBody(components.GroupProjectile, x, y, cfg.Width, cfg.Height)
		w.SetAllowGravity(id, false)
		w.SetCollideWorldBounds(id, true, true)
		ecs.AddComponent(em, id, &components.ProjectileComponent{})
	}

	if proj, ok := ecs.GetComponent[*components.ProjectileComponent](em, id); ok {
		proj.Direction = dir
	}
	ux, uy := dir.Unit()
	w.SetVelocity(id, ux*cfg.Speed, uy*cfg.Speed)

	return id, nil
}

// findIdleProjectile 查找一颗已停用的子弹
func findIdleProjectile(w *physics.World) (ecs.EntityID, bool) {
	ids := ecs.GetEntitiesWith1[*components.ProjectileComponent](w.EntityManager())
	for _, id := range ids {
		if !w.IsActive(id) {
			return id, true
		}
	}
	return 0, false
}
