package components

// AnimationState 玩家动画状态
type AnimationState int

const (
	// AnimIdle 正面站立（原版 "turn" 帧）
	AnimIdle AnimationState = iota
	// AnimLeft 向左跑动
	AnimLeft
	// AnimRight 向右跑动
	AnimRight
)

// String 返回动画键名
func (a AnimationState) String() string {
	switch a {
	case AnimLeft:
		return "left"
	case AnimRight:
		return "right"
	default:
		return "turn"
	}
}

// PlayerComponent 标记玩家实体，每局有且只有一个
type PlayerComponent struct {
	Animation AnimationState // 当前播放的动画
	Tinted    bool           // 被炸弹击中后染红
}
