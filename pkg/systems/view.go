package systems

import (
	"github.com/gonewx/starcatch/pkg/components"
	"github.com/gonewx/starcatch/pkg/ecs"
	"github.com/gonewx/starcatch/pkg/game"
)

// SpriteView 一个可见实体的渲染信息（中心点坐标）
type SpriteView struct {
	ID        ecs.EntityID
	Group     components.Group
	X, Y      float64
	Width     float64
	Height    float64
	Animation components.AnimationState
	Tinted    bool
}

// View 渲染快照，前端只读
type View struct {
	Width  float64
	Height float64

	Score   int
	Phase   game.RunPhase
	Waves   int
	Hazards int

	Sprites []SpriteView
}

// View 生成当前帧的渲染快照，只包含激活的实体，按创建顺序排列
func (s *Simulation) View() View {
	v := View{
		Width:  s.cfg.World.Width,
		Height: s.cfg.World.Height,
		Phase:  s.machine.Phase(),
	}
	if s.run == nil {
		return v
	}

	run := s.run
	em := run.EntityManager
	v.Score = run.Score.Value()
	v.Waves = run.Spawner.Waves()
	v.Hazards = run.Spawner.ActiveHazards()

	ids := ecs.GetEntitiesWith3[
		*components.BodyComponent,
		*components.PositionComponent,
		*components.GroupComponent,
	](em)
	v.Sprites = make([]SpriteView, 0, len(ids))

	for _, id := range ids {
		body, _ := ecs.GetComponent[*components.BodyComponent](em, id)
		if !body.Active {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		group, _ := ecs.GetComponent[*components.GroupComponent](em, id)

		sprite := SpriteView{
			ID:     id,
			Group:  group.Group,
			X:      pos.X,
			Y:      pos.Y,
			Width:  body.Width,
			Height: body.Height,
		}
		if player, ok := ecs.GetComponent[*components.PlayerComponent](em, id); ok {
			sprite.Animation = player.Animation
			sprite.Tinted = player.Tinted
		}
		v.Sprites = append(v.Sprites, sprite)
	}

	return v
}

// PlayerSprite 返回玩家的渲染信息
func (v View) PlayerSprite() (SpriteView, bool) {
	for _, sp := range v.Sprites {
		if sp.Group == components.GroupPlayer {
			return sp, true
		}
	}
	return SpriteView{}, false
}
