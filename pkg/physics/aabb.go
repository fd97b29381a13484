package physics

import (
	"math"

	"github.com/gonewx/starcatch/pkg/components"
)

// rect 中心对齐的碰撞盒边界
type rect struct {
	left, right, top, bottom float64
}

func boundsOf(pos *components.PositionComponent, body *components.BodyComponent) rect {
	return rect{
		left:   pos.X - body.Width/2,
		right:  pos.X + body.Width/2,
		top:    pos.Y - body.Height/2,
		bottom: pos.Y + body.Height/2,
	}
}

// intersects 检查两个碰撞盒是否重叠
// 边界刚好接触不算重叠，静止在平台上的刚体因此每帧只修正重力带来的微小穿透
func intersects(a, b rect) bool {
	return a.right > b.left &&
		a.left < b.right &&
		a.bottom > b.top &&
		a.top < b.bottom
}

// penetration 返回两个轴上的穿透深度
func penetration(a, b rect) (float64, float64) {
	dx := math.Min(a.right, b.right) - math.Max(a.left, b.left)
	dy := math.Min(a.bottom, b.bottom) - math.Max(a.top, b.top)
	return dx, dy
}
