package game

import (
	"sort"
	"time"
)

// TaskID 延迟任务标识，0 表示无效
type TaskID uint64

// Scheduler 一次性延迟任务调度接口
type Scheduler interface {
	// ScheduleOnce 在 delay 之后执行 fn（一次）
	ScheduleOnce(delay time.Duration, fn func()) TaskID
	// Cancel 取消尚未执行的任务，返回是否取消成功
	Cancel(id TaskID) bool
}

type scheduledTask struct {
	id  TaskID
	due time.Duration
	fn  func()
}

// TickScheduler 由模拟时钟驱动的调度器
//
// 没有内部线程：调用方每帧用单调递增的模拟时间调用 Advance，
// 到期任务在 Advance 内同步执行。
type TickScheduler struct {
	now    time.Duration
	nextID TaskID
	tasks  []scheduledTask
}

// NewTickScheduler 创建调度器，时钟从 0 开始
func NewTickScheduler() *TickScheduler {
	return &TickScheduler{nextID: 1}
}

// Now 返回调度器当前时间
func (s *TickScheduler) Now() time.Duration {
	return s.now
}

// Pending 返回尚未执行的任务数
func (s *TickScheduler) Pending() int {
	return len(s.tasks)
}

// ScheduleOnce 在当前时间 + delay 处安排一次性任务
func (s *TickScheduler) ScheduleOnce(delay time.Duration, fn func()) TaskID {
	if delay < 0 {
		delay = 0
	}
	id := s.nextID
	s.nextID++
	s.tasks = append(s.tasks, scheduledTask{id: id, due: s.now + delay, fn: fn})
	return id
}

// Cancel 取消任务
func (s *TickScheduler) Cancel(id TaskID) bool {
	for i, task := range s.tasks {
		if task.id == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// Advance 把时钟推进到 now 并执行所有到期任务
//
// 时间不会倒退；到期任务按到期时间、再按创建顺序执行。
// 回调中新安排的任务如果也已到期，会在同一次 Advance 中执行。
func (s *TickScheduler) Advance(now time.Duration) {
	if now > s.now {
		s.now = now
	}

	for {
		due := s.popDue()
		if due == nil {
			return
		}
		if due.fn != nil {
			due.fn()
		}
	}
}

// popDue 取出最早到期的任务
func (s *TickScheduler) popDue() *scheduledTask {
	if len(s.tasks) == 0 {
		return nil
	}
	sort.SliceStable(s.tasks, func(i, j int) bool {
		if s.tasks[i].due != s.tasks[j].due {
			return s.tasks[i].due < s.tasks[j].due
		}
		return s.tasks[i].id < s.tasks[j].id
	})
	if s.tasks[0].due > s.now {
		return nil
	}
	task := s.tasks[0]
	s.tasks = s.tasks[1:]
	return &task
}
