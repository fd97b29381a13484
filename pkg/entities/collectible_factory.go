package entities

import (
	"fmt"

	"github.com/gonewx/starcatch/pkg/components"
	"github.com/gonewx/starcatch/pkg/config"
	"github.com/gonewx/starcatch/pkg/ecs"
	"github.com/gonewx/starcatch/pkg/physics"
)

// NewCollectible 创建波次中的第 index 颗星星
// 星星从 y=0 落下，X 坐标按 StartX + index*StepX 均匀排布
//
// 参数:
//   - w: 物理世界
//   - cfg: 星星配置
//   - index: 波次下标（0-based）
//   - bounceY: 该星星独立的垂直反弹系数
//
// 返回:
//   - ecs.EntityID: 星星实体ID
//   - error: 参数无效时返回错误
func NewCollectible(w *physics.World, cfg config.CollectibleConfig, index int, bounceY float64) (ecs.EntityID, error) {
	if w == nil {
		return 0, fmt.Errorf("physics world cannot be nil")
	}
	if index < 0 || index >= cfg.Count {
		return 0, fmt.Errorf("collectible index %d out of range [0, %d)", index, cfg.Count)
	}

	x := cfg.StartX + float64(index)*cfg.StepX
	id := w.CreateBody(components.GroupCollectible, x, 0, cfg.Width, cfg.Height)
	w.SetBounce(id, 0, bounceY)

	ecs.AddComponent(w.EntityManager(), id, &components.CollectibleComponent{
		Index:   index,
		OriginX: x,
		BounceY: bounceY,
	})
	return id, nil
}
