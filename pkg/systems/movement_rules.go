package systems

import (
	"github.com/gonewx/starcatch/pkg/components"
	"github.com/gonewx/starcatch/pkg/config"
)

// MovementAction 一条移动规则产生的动作
// 只有对应 Set 标志为 true 的字段才会被应用
type MovementAction struct {
	SetVelocityX bool
	VelocityX    float64
	SetVelocityY bool
	VelocityY    float64

	SetAnimation bool
	Animation    components.AnimationState

	Fire          bool
	FireDirection components.Direction
}

// MovementRule 有序规则表中的一行
type MovementRule struct {
	Name string
	// When 判断规则是否命中
	When func(in InputSnapshot, grounded bool) bool
	// Then 生成动作（纯函数）
	Then func(in InputSnapshot, cfg config.PlayerConfig) MovementAction
}

// movementRules 按优先级排列，第一条命中的规则生效，其余规则不再执行
//
//	left  > right > jump（需落地） > fire（只向上发射） > idle
//
// 移动中发射的方向跟随移动方向，起跳和原地发射都向上。
var movementRules = []MovementRule{
	{
		Name: "left",
		When: func(in InputSnapshot, _ bool) bool { return in.Left },
		Then: func(in InputSnapshot, cfg config.PlayerConfig) MovementAction {
			return MovementAction{
				SetVelocityX:  true,
				VelocityX:     -cfg.Speed,
				SetAnimation:  true,
				Animation:     components.AnimLeft,
				Fire:          in.Fire,
				FireDirection: components.DirectionLeft,
			}
		},
	},
	{
		Name: "right",
		When: func(in InputSnapshot, _ bool) bool { return in.Right },
		Then: func(in InputSnapshot, cfg config.PlayerConfig) MovementAction {
			return MovementAction{
				SetVelocityX:  true,
				VelocityX:     cfg.Speed,
				SetAnimation:  true,
				Animation:     components.AnimRight,
				Fire:          in.Fire,
				FireDirection: components.DirectionRight,
			}
		},
	},
	{
		Name: "jump",
		When: func(in InputSnapshot, grounded bool) bool { return in.Up && grounded },
		Then: func(in InputSnapshot, cfg config.PlayerConfig) MovementAction {
			return MovementAction{
				SetVelocityY:  true,
				VelocityY:     -cfg.JumpImpulse,
				Fire:          in.Fire,
				FireDirection: components.DirectionUp,
			}
		},
	},
	{
		Name: "fire",
		When: func(in InputSnapshot, _ bool) bool { return in.Fire },
		Then: func(_ InputSnapshot, _ config.PlayerConfig) MovementAction {
			// 原地发射后仍然回到站立状态
			return MovementAction{
				SetVelocityX:  true,
				SetAnimation:  true,
				Animation:     components.AnimIdle,
				Fire:          true,
				FireDirection: components.DirectionUp,
			}
		},
	},
	{
		Name: "idle",
		When: func(InputSnapshot, bool) bool { return true },
		Then: func(_ InputSnapshot, _ config.PlayerConfig) MovementAction {
			return MovementAction{
				SetVelocityX: true,
				SetAnimation: true,
				Animation:    components.AnimIdle,
			}
		},
	},
}

// MovementRules 返回规则表的副本（按优先级排列）
func MovementRules() []MovementRule {
	rules := make([]MovementRule, len(movementRules))
	copy(rules, movementRules)
	return rules
}

// EvaluateMovement 按优先级求值规则表
//
// 参数:
//   - in: 本帧按键状态
//   - grounded: 玩家是否站在平台上
//   - cfg: 玩家参数
//
// 返回:
//   - MovementAction: 命中规则产生的动作
//   - string: 命中规则的名称
func EvaluateMovement(in InputSnapshot, grounded bool, cfg config.PlayerConfig) (MovementAction, string) {
	for _, rule := range movementRules {
		if rule.When(in, grounded) {
			return rule.Then(in, cfg), rule.Name
		}
	}
	return MovementAction{}, ""
}
