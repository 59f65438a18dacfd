package notify

import (
	"sync"

	"go.uber.org/zap"
)

type WorkerPoolI interface {
	TryAddTask(task Task) bool
	Close()
}

type Task func() error

type WorkerPool struct {
	pool   chan Task
	wg     sync.WaitGroup
	mu     sync.RWMutex
	closed bool
}

// NewWorkerPool starts size workers sharing a queue of queueSize pending tasks.
func NewWorkerPool(size, queueSize int) *WorkerPool {
	if size < 1 {
		size = 1
	}
	wp := &WorkerPool{pool: make(chan Task, queueSize)}

	wp.wg.Add(size)
	for i := 0; i < size; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()
	for task := range wp.pool {
		if err := task(); err != nil {
			zap.L().Error("Task execution failed", zap.Error(err))
		}
	}
}

// TryAddTask queues the task without waiting. It reports false when the queue is full
// or the pool is closed.
func (wp *WorkerPool) TryAddTask(task Task) bool {
	wp.mu.RLock()
	defer wp.mu.RUnlock()
	if wp.closed {
		return false
	}
	select {
	case wp.pool <- task:
		return true
	default:
		return false
	}
}

// Close stops accepting tasks and waits for the queued ones to finish.
func (wp *WorkerPool) Close() {
	wp.mu.Lock()
	if wp.closed {
		wp.mu.Unlock()
		return
	}
	wp.closed = true
	close(wp.pool)
	wp.mu.Unlock()

	wp.wg.Wait()
}
