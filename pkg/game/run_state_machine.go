package game

import (
	"log"
	"time"
)

// RunPhase 单局状态
type RunPhase int

const (
	// RunPhaseNone 尚未开始任何一局
	RunPhaseNone RunPhase = iota
	// RunPhasePlaying 进行中
	RunPhasePlaying
	// RunPhaseEnded 已结束，等待返回菜单
	RunPhaseEnded
)

// String 返回状态名称
func (p RunPhase) String() string {
	switch p {
	case RunPhasePlaying:
		return "playing"
	case RunPhaseEnded:
		return "ended"
	default:
		return "none"
	}
}

// RunStateMachine 单局状态机
//
// 状态迁移：
//   - Begin: 任意状态 -> Playing（开始新一局，代数 +1，取消上一局的待执行迁移）
//   - End:   Playing -> Ended（每局只会发生一次），并安排延迟回调
//
// 延迟回调以代数为键：如果回调触发时已经开始了新的一局，回调是空操作。
type RunStateMachine struct {
	scheduler  Scheduler
	phase      RunPhase
	generation uint64

	pendingTask TaskID
}

// NewRunStateMachine 创建状态机
//
// 参数：
//   - scheduler: 用于安排结束后的延迟迁移
//
// 返回：
//   - *RunStateMachine: 处于 RunPhaseNone 的状态机
func NewRunStateMachine(scheduler Scheduler) *RunStateMachine {
	return &RunStateMachine{scheduler: scheduler}
}

// Begin 开始新一局，返回新的代数
func (m *RunStateMachine) Begin() uint64 {
	if m.pendingTask != 0 && m.scheduler != nil {
		if m.scheduler.Cancel(m.pendingTask) {
			log.Printf("[RunStateMachine] Cancelled pending transition of run %d", m.generation)
		}
	}
	m.pendingTask = 0
	m.generation++
	m.phase = RunPhasePlaying
	log.Printf("[RunStateMachine] Run %d started", m.generation)
	return m.generation
}

// End 结束当前一局并在 delay 后执行 onExpire
//
// 只有 Playing 状态可以结束；重复调用返回 false 且不安排新的回调。
func (m *RunStateMachine) End(delay time.Duration, onExpire func()) bool {
	if m.phase != RunPhasePlaying {
		return false
	}
	m.phase = RunPhaseEnded
	log.Printf("[RunStateMachine] Run %d ended, transition in %v", m.generation, delay)

	if m.scheduler == nil {
		return true
	}

	generation := m.generation
	m.pendingTask = m.scheduler.ScheduleOnce(delay, func() {
		if m.generation != generation {
			log.Printf("[RunStateMachine] Skipped stale transition of run %d (current run %d)", generation, m.generation)
			return
		}
		m.pendingTask = 0
		if onExpire != nil {
			onExpire()
		}
	})
	return true
}

// Phase 返回当前状态
func (m *RunStateMachine) Phase() RunPhase {
	return m.phase
}

// Generation 返回当前局的代数（从 1 开始）
func (m *RunStateMachine) Generation() uint64 {
	return m.generation
}

// IsPlaying 是否进行中
func (m *RunStateMachine) IsPlaying() bool {
	return m.phase == RunPhasePlaying
}

// IsEnded 是否已结束
func (m *RunStateMachine) IsEnded() bool {
	return m.phase == RunPhaseEnded
}

// HasPendingTransition 是否有尚未执行的延迟迁移
func (m *RunStateMachine) HasPendingTransition() bool {
	return m.pendingTask != 0
}
