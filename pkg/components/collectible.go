package components

// CollectibleComponent 星星组件
//
// 一波星星的数量固定，重生时恢复到 OriginX 并从 y=0 落下，
// BounceY 在创建时随机生成并在重生之间保持不变。
type CollectibleComponent struct {
	Index   int     // 在波次中的下标
	OriginX float64 // 初始 X 坐标
	BounceY float64 // 独立的垂直反弹系数 [0.4, 0.8)
}
