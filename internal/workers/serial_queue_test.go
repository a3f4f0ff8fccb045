// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-story-drafts/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQueue(t *testing.T, size int) *SerialQueue {
	t.Helper()
	q := NewSerialQueue("test", size, logger.Nop())
	t.Cleanup(q.Stop)
	return q
}

func TestSerialQueue_RunsTasksInSubmissionOrder(t *testing.T) {
	q := newTestQueue(t, 4)
	q.Run()

	var (
		mu    sync.Mutex
		order []int
	)
	for i := range 100 {
		require.True(t, q.Submit(func(context.Context) {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
		}))
	}
	q.Flush()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, order, 100)
	for i, v := range order {
		assert.Equal(t, i, v)
	}
}

func TestSerialQueue_NeverRunsTasksConcurrently(t *testing.T) {
	q := newTestQueue(t, 16)
	q.Run()

	var active, maxActive atomic.Int32
	for range 50 {
		q.Submit(func(context.Context) {
			n := active.Add(1)
			if n > maxActive.Load() {
				maxActive.Store(n)
			}
			time.Sleep(100 * time.Microsecond)
			active.Add(-1)
		})
	}
	q.Flush()

	assert.Equal(t, int32(1), maxActive.Load())
}

func TestSerialQueue_TasksSubmittedBeforeRun(t *testing.T) {
	q := newTestQueue(t, 4)

	var ran atomic.Bool
	require.True(t, q.Submit(func(context.Context) { ran.Store(true) }))

	// Flush is a no-op while the queue is idle
	q.Flush()
	assert.False(t, ran.Load())

	q.Run()
	q.Flush()
	assert.True(t, ran.Load())
}

func TestSerialQueue_RecoversFromPanic(t *testing.T) {
	q := newTestQueue(t, 4)
	q.Run()

	var ran atomic.Bool
	q.Submit(func(context.Context) { panic("boom") })
	q.Submit(func(context.Context) { ran.Store(true) })
	q.Flush()

	assert.True(t, ran.Load())
}

func TestSerialQueue_StopDrainsAndRejects(t *testing.T) {
	q := NewSerialQueue("test", 8, logger.Nop())
	q.Run()

	var count atomic.Int32
	for range 5 {
		q.Submit(func(context.Context) {
			time.Sleep(time.Millisecond)
			count.Add(1)
		})
	}
	q.Stop()

	assert.Equal(t, int32(5), count.Load())
	assert.False(t, q.Submit(func(context.Context) { count.Add(1) }))
	assert.NotPanics(t, q.Stop)
	assert.NotPanics(t, q.Flush)
}

func TestSerialQueue_ContextCancelledAfterStop(t *testing.T) {
	q := NewSerialQueue("test", 1, logger.Nop())
	q.Run()

	var taskCtx context.Context
	q.Submit(func(ctx context.Context) { taskCtx = ctx })
	q.Flush()
	require.NotNil(t, taskCtx)
	assert.NoError(t, taskCtx.Err())

	q.Stop()
	assert.ErrorIs(t, taskCtx.Err(), context.Canceled)
}

func TestSerialQueue_DefaultSize(t *testing.T) {
	q := newTestQueue(t, 0)
	assert.Equal(t, DefaultQueueSize, cap(q.tasks))
}

func TestWorkers_Stop_StopsQueues(t *testing.T) {
	q := NewSerialQueue("test", 1, logger.Nop())
	ws := NewWorkers(q)
	ws.Run()
	ws.Stop()

	assert.False(t, q.Submit(func(context.Context) {}))
}
