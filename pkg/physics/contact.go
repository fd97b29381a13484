package physics

import (
	"github.com/gonewx/starcatch/pkg/components"
	"github.com/gonewx/starcatch/pkg/ecs"
)

// ContactKind 接触类型
type ContactKind int

const (
	// ContactSolid 实体碰撞，物理层已做位置修正
	ContactSolid ContactKind = iota
	// ContactOverlap 重叠，不改变轨迹
	ContactOverlap
	// ContactWorldBounds 碰到世界边界（B 为 0）
	ContactWorldBounds
)

// String 返回接触类型名称
func (k ContactKind) String() string {
	switch k {
	case ContactOverlap:
		return "overlap"
	case ContactWorldBounds:
		return "world-bounds"
	default:
		return "solid"
	}
}

// Contact 一次物理步进中产生的接触报告
//
// A 属于 GroupA，B 属于 GroupB，顺序与注册碰撞对时一致。
type Contact struct {
	Kind   ContactKind
	A      ecs.EntityID
	B      ecs.EntityID
	GroupA components.Group
	GroupB components.Group
}

// GroupPair 注册的分组对
type GroupPair struct {
	A components.Group
	B components.Group
}
