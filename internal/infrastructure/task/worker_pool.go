// Package task 提供后台任务执行能力
// worker_pool.go: 闭包任务的 Worker Pool
// scheduler.go: 基于 Worker Pool 的延时任务（自动回复、提示条自动消失）
package task

import (
	"sync"

	"go.uber.org/zap"
)

// job 定义任务（纯闭包模式）
type job struct {
	Action func()
}

// Pool 固定数量 Worker 消费的任务池
type Pool struct {
	jobs      chan *job
	wg        sync.WaitGroup
	closeOnce sync.Once
	mu        sync.RWMutex
	closed    bool
}

// NewPool 创建并启动任务池
// workerNum: 后台协程数量
// bufferSize: 通道缓冲区大小
func NewPool(workerNum int, bufferSize int) *Pool {
	if workerNum <= 0 {
		workerNum = 1
	}
	p := &Pool{jobs: make(chan *job, bufferSize)}
	for i := 0; i < workerNum; i++ {
		p.wg.Add(1)
		go p.startWorker()
	}
	zap.L().Info("Task workers started", zap.Int("workers", workerNum), zap.Int("buffer", bufferSize))
	return p
}

// Submit 提交异步任务
// 通道已满或任务池已关闭时降级为同步执行，同样捕获 panic
func (p *Pool) Submit(action func()) {
	if action == nil {
		return
	}
	j := &job{Action: action}
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		p.run(j)
		return
	}
	select {
	case p.jobs <- j:
		p.mu.RUnlock()
	default:
		p.mu.RUnlock()
		zap.L().Warn("task channel full, executing synchronously")
		p.run(j)
	}
}

// Close 停止接收新任务，等待已入队任务执行完毕
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		p.closed = true
		close(p.jobs)
		p.mu.Unlock()
		p.wg.Wait()
	})
}

// startWorker 单个 Worker 消费循环
func (p *Pool) startWorker() {
	defer p.wg.Done()
	for j := range p.jobs {
		p.run(j)
	}
}

// run 执行单个任务，panic 不影响 Worker 继续消费
func (p *Pool) run(j *job) {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error("task worker panic", zap.Any("recover", r))
		}
	}()
	j.Action()
}
