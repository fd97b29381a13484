package components

// Direction 子弹发射方向
type Direction int

const (
	DirectionUp Direction = iota
	DirectionLeft
	DirectionRight
)

// String 返回方向名称
func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "up"
	}
}

// Unit 返回方向的单位向量，只有一个轴非零
func (d Direction) Unit() (float64, float64) {
	switch d {
	case DirectionLeft:
		return -1, 0
	case DirectionRight:
		return 1, 0
	default:
		return 0, -1
	}
}

// ProjectileComponent 子弹组件
type ProjectileComponent struct {
	Direction Direction
}
