package entities

import (
	"fmt"

	"github.com/gonewx/starcatch/pkg/components"
	"github.com/gonewx/starcatch/pkg/config"
	"github.com/gonewx/starcatch/pkg/ecs"
	"github.com/gonewx/starcatch/pkg/physics"
)

// NewPlatform 创建静态平台实体
func NewPlatform(w *physics.World, cfg config.PlatformConfig) (ecs.EntityID, error) {
	if w == nil {
		return 0, fmt.Errorf("physics world cannot be nil")
	}

	id := w.CreateStaticBody(components.GroupPlatform, cfg.X, cfg.Y, cfg.Width, cfg.Height)
	ecs.AddComponent(w.EntityManager(), id, &components.PlatformComponent{})
	return id, nil
}
