package utils

import "math"

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	t = Clamp01(t)
	return 1 - math.Pow(1-t, 3)
}

// Pulse 返回 [0, 1] 之间往复变化的值，周期为 period 秒
// 用于菜单提示文字的闪烁
func Pulse(elapsed, period float64) float64 {
	if period <= 0 {
		return 1
	}
	return 0.5 - 0.5*math.Cos(2*math.Pi*elapsed/period)
}

// Clamp01 把 t 限制在 [0, 1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
