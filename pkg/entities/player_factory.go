package entities

import (
	"fmt"
	"log"

	"github.com/gonewx/starcatch/pkg/components"
	"github.com/gonewx/starcatch/pkg/config"
	"github.com/gonewx/starcatch/pkg/ecs"
	"github.com/gonewx/starcatch/pkg/physics"
)

// NewPlayer 创建玩家实体
// 玩家带轻微反弹，被世界边界阻挡
//
// 参数:
//   - w: 物理世界
//   - cfg: 玩家配置
//
// 返回:
//   - ecs.EntityID: 玩家实体ID
//   - error: 物理世界为 nil 时返回错误
func NewPlayer(w *physics.World, cfg config.PlayerConfig) (ecs.EntityID, error) {
	if w == nil {
		return 0, fmt.Errorf("physics world cannot be nil")
	}

	id := w.CreateBody(components.GroupPlayer, cfg.StartX, cfg.StartY, cfg.Width, cfg.Height)
	w.SetBounce(id, cfg.Bounce, cfg.Bounce)
	w.SetCollideWorldBounds(id, true, false)

	ecs.AddComponent(w.EntityManager(), id, &components.PlayerComponent{
		Animation: components.AnimIdle,
	})

	log.Printf("[PlayerFactory] Created player %d at (%.0f, %.0f)", id, cfg.StartX, cfg.StartY)
	return id, nil
}
