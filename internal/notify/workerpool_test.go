package notify

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPool(t *testing.T) {
	tests := []struct {
		name           string
		numTasks       int
		numWorkers     int
		expectedErrors int
	}{
		{
			name:       "Simple tasks",
			numTasks:   5,
			numWorkers: 2,
		},
		{
			name:           "Error in task",
			numTasks:       2,
			numWorkers:     2,
			expectedErrors: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wp := NewWorkerPool(tt.numWorkers, tt.numTasks)
			defer wp.Close()

			var mu sync.Mutex
			var executed, failed int
			var wg sync.WaitGroup

			for i := 0; i < tt.numTasks; i++ {
				wg.Add(1)
				i := i
				queued := wp.TryAddTask(func() error {
					defer wg.Done()
					mu.Lock()
					defer mu.Unlock()
					if i == tt.numTasks-1 && tt.expectedErrors > 0 {
						failed++
						return assert.AnError
					}
					executed++
					return nil
				})
				require.True(t, queued)
			}

			wg.Wait()
			assert.Equal(t, tt.numTasks-tt.expectedErrors, executed)
			assert.Equal(t, tt.expectedErrors, failed)
		})
	}
}

func TestWorkerPool_TryAddTaskDropsWhenFull(t *testing.T) {
	wp := NewWorkerPool(1, 1)
	release := make(chan struct{})
	started := make(chan struct{})

	require.True(t, wp.TryAddTask(func() error {
		close(started)
		<-release
		return nil
	}))
	<-started
	require.True(t, wp.TryAddTask(func() error { return nil }))

	assert.False(t, wp.TryAddTask(func() error { return nil }), "queue is full")

	close(release)
	wp.Close()
	assert.False(t, wp.TryAddTask(func() error { return nil }), "pool is closed")
}

func TestWorkerPool_CloseDrainsQueue(t *testing.T) {
	wp := NewWorkerPool(1, 10)
	var done int32
	for i := 0; i < 10; i++ {
		require.True(t, wp.TryAddTask(func() error {
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&done, 1)
			return nil
		}))
	}
	wp.Close()
	wp.Close()

	assert.Equal(t, int32(10), atomic.LoadInt32(&done))
	assert.False(t, wp.TryAddTask(func() error { return nil }))
}
