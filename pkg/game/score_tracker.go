package game

// ScoreTracker 记录本局分数
//
// 分数只会因为两件事改变：收集星星（+reward）和成功发射子弹（-cost）。
// 分数为 0 时不能消费，因此分数永远不会变成负数。
type ScoreTracker struct {
	value int
}

// NewScoreTracker 创建分数为 0 的记分器
func NewScoreTracker() *ScoreTracker {
	return &ScoreTracker{}
}

// Value 返回当前分数
func (s *ScoreTracker) Value() int {
	return s.value
}

// Collect 收集奖励，返回新的分数
func (s *ScoreTracker) Collect(reward int) int {
	if reward > 0 {
		s.value += reward
	}
	return s.value
}

// CanSpend 检查是否可以消费指定分数
// 分数为 0 时无论 cost 为多少都不能消费
func (s *ScoreTracker) CanSpend(cost int) bool {
	return s.value > 0 && s.value >= cost
}

// Spend 扣除分数，分数不足时返回 false 且不做任何修改
func (s *ScoreTracker) Spend(cost int) bool {
	if !s.CanSpend(cost) {
		return false
	}
	s.value -= cost
	return true
}

// Reset 新一局开始时清零
func (s *ScoreTracker) Reset() {
	s.value = 0
}
