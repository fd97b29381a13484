package components

// HazardComponent 炸弹组件
type HazardComponent struct {
	Wave int // 生成该炸弹时已完成的波次数
}
