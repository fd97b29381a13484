package systems

// InputSnapshot 一帧的按键状态
// 由前端（ebiten 或终端）每帧采集后交给 Simulation
type InputSnapshot struct {
	Left  bool
	Right bool
	Up    bool
	Fire  bool
}

// Any 是否有任何按键按下
func (in InputSnapshot) Any() bool {
	return in.Left || in.Right || in.Up || in.Fire
}
