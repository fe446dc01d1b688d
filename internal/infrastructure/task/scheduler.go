package task

import (
	"sync"
	"time"
)

// Scheduler 延时执行一次性任务
// 任务是 fire-and-forget 的：没有取消、没有重试
type Scheduler interface {
	After(delay time.Duration, action func())
}

// TimerScheduler 用 time.AfterFunc 计时，到点后把任务交给 Pool 执行
type TimerScheduler struct {
	pool *Pool
}

// NewTimerScheduler 创建基于 Pool 的延时调度器
func NewTimerScheduler(pool *Pool) *TimerScheduler {
	return &TimerScheduler{pool: pool}
}

// After 在 delay 之后执行 action
func (s *TimerScheduler) After(delay time.Duration, action func()) {
	time.AfterFunc(delay, func() {
		s.pool.Submit(action)
	})
}

// ManualScheduler 手动触发的调度器，测试中用来替代真实计时
type ManualScheduler struct {
	mu      sync.Mutex
	pending []scheduled
}

type scheduled struct {
	delay  time.Duration
	action func()
}

// After 只记录任务，不执行
func (s *ManualScheduler) After(delay time.Duration, action func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, scheduled{delay: delay, action: action})
}

// Pending 返回尚未执行的任务数
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Delays 返回尚未执行任务的延迟，按登记顺序
func (s *ManualScheduler) Delays() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]time.Duration, 0, len(s.pending))
	for _, p := range s.pending {
		out = append(out, p.delay)
	}
	return out
}

// RunPending 按登记顺序执行当前所有任务
// 执行过程中新登记的任务留到下一次调用
func (s *ManualScheduler) RunPending() int {
	s.mu.Lock()
	batch := s.pending
	s.pending = nil
	s.mu.Unlock()

	for _, p := range batch {
		p.action()
	}
	return len(batch)
}
