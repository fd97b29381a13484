package components

// Group 实体分组，碰撞分派表以分组对为键
type Group int

const (
	GroupNone Group = iota
	GroupPlayer
	GroupPlatform
	GroupCollectible
	GroupHazard
	GroupProjectile
	// GroupWorldBounds 世界边界伪分组，只出现在接触报告中
	GroupWorldBounds
)

// String 返回分组名称（用于日志）
func (g Group) String() string {
	switch g {
	case GroupPlayer:
		return "player"
	case GroupPlatform:
		return "platform"
	case GroupCollectible:
		return "collectible"
	case GroupHazard:
		return "hazard"
	case GroupProjectile:
		return "projectile"
	case GroupWorldBounds:
		return "world-bounds"
	default:
		return "none"
	}
}

// GroupComponent 标记实体所属分组
type GroupComponent struct {
	Group Group
}
