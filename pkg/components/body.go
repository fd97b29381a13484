package components

// Touching 记录本帧物理步进中各方向的接触情况
type Touching struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
}

// None 判断是否没有任何接触
func (t Touching) None() bool {
	return !t.Up && !t.Down && !t.Left && !t.Right
}

// BodyComponent 物理刚体组件
//
// 对应物理服务中的 BodyHandle：
//   - 停用（Active=false）是标志位翻转而不是销毁，实体保留在池中供重新激活
//   - Static 刚体（平台）不参与积分，只用于分离其他刚体
type BodyComponent struct {
	Width  float64 // 碰撞盒宽度（像素）
	Height float64 // 碰撞盒高度（像素）

	BounceX float64 // 水平反弹系数 0~1
	BounceY float64 // 垂直反弹系数 0~1

	AllowGravity bool    // 是否受世界重力影响
	GravityY     float64 // 额外的重力加速度（像素/秒²），叠加在世界重力上

	CollideWorldBounds bool // 是否被世界边界阻挡
	OnWorldBounds      bool // 碰到世界边界时是否上报 WorldBounds 接触

	Static bool // 静态刚体（平台）
	Active bool // 是否激活

	// Touching 与其他刚体接触（如站在平台上时 Down=true）
	Touching Touching
	// Blocked 被世界边界阻挡
	Blocked Touching
}

// Grounded 是否站在平台上
// 只统计与刚体的接触，世界边界不计入（与跳跃判定保持一致）
func (b *BodyComponent) Grounded() bool {
	return b.Active && b.Touching.Down
}
