package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/starcatch/pkg/systems"
)

// holdWindow 终端没有按键释放事件，按下后在该时间内视为仍按住
// 略大于系统键盘重复间隔，长按时不会出现断续
const holdWindow = 150 * time.Millisecond

// control 终端可识别的控制键
type control int

const (
	controlNone control = iota
	controlLeft
	controlRight
	controlUp
	controlFire
)

// heldKeys 用最近一次按下时间模拟按住状态
type heldKeys struct {
	pressed map[control]time.Time
}

func newHeldKeys() *heldKeys {
	return &heldKeys{pressed: make(map[control]time.Time)}
}

// controlOf 将 tcell 按键映射到控制键
func controlOf(ev *tcell.EventKey) control {
	switch ev.Key() {
	case tcell.KeyLeft:
		return controlLeft
	case tcell.KeyRight:
		return controlRight
	case tcell.KeyUp:
		return controlUp
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			return controlLeft
		case 'd', 'D':
			return controlRight
		case 'w', 'W':
			return controlUp
		case ' ':
			return controlFire
		}
	}
	return controlNone
}

// press 记录按键
func (h *heldKeys) press(c control, at time.Time) {
	if c == controlNone {
		return
	}
	h.pressed[c] = at
}

// clear 忘掉所有按键（切换场景时调用）
func (h *heldKeys) clear() {
	for c := range h.pressed {
		delete(h.pressed, c)
	}
}

func (h *heldKeys) held(c control, now time.Time) bool {
	at, ok := h.pressed[c]
	if !ok {
		return false
	}
	d := now.Sub(at)
	return d >= 0 && d < holdWindow
}

// snapshot 生成当前时刻的输入快照
func (h *heldKeys) snapshot(now time.Time) systems.InputSnapshot {
	return systems.InputSnapshot{
		Left:  h.held(controlLeft, now),
		Right: h.held(controlRight, now),
		Up:    h.held(controlUp, now),
		Fire:  h.held(controlFire, now),
	}
}
