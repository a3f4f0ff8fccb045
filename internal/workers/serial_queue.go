// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-story-drafts/internal/logger"
)

// DefaultQueueSize is the task buffer used when a non-positive size is given.
const DefaultQueueSize = 256

// Task is a unit of work executed on a [SerialQueue]. The context carries the
// queue logger and is cancelled once the queue has stopped.
type Task func(ctx context.Context)

// SerialQueue executes submitted tasks one at a time on a single goroutine,
// strictly in submission order. All storage reads and writes of the drafts
// store go through one SerialQueue.
type SerialQueue struct {
	name   string
	tasks  chan Task
	logger *logger.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.RWMutex
	started bool
	stopped bool
	done    chan struct{}
}

// NewSerialQueue creates an idle queue. Tasks may be submitted before Run;
// they are executed once the queue is started.
func NewSerialQueue(name string, size int, log *logger.Logger) *SerialQueue {
	if size <= 0 {
		size = DefaultQueueSize
	}

	queueLog := &logger.Logger{Logger: log.With().Str("queue", name).Logger()}
	ctx, cancel := context.WithCancel(queueLog.WithContext(context.Background()))

	return &SerialQueue{
		name:   name,
		tasks:  make(chan Task, size),
		logger: queueLog,
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
	}
}

// Run implements [Worker]. It starts the queue goroutine and returns
// immediately. Calling Run more than once has no effect.
func (q *SerialQueue) Run() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.started || q.stopped {
		return
	}
	q.started = true

	go q.loop()
	q.logger.Debug().Msg("serial queue started")
}

func (q *SerialQueue) loop() {
	defer close(q.done)

	for task := range q.tasks {
		q.execute(task)
	}
}

func (q *SerialQueue) execute(task Task) {
	defer func() {
		if r := recover(); r != nil {
			q.logger.Error().Interface("panic", r).Msg("queue task panicked")
		}
	}()

	task(q.ctx)
}

// Submit enqueues task and reports whether it was accepted. Tasks submitted
// after Stop are dropped. Submit blocks only while the buffer is full.
func (q *SerialQueue) Submit(task Task) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.stopped {
		q.logger.Warn().Msg("task submitted to stopped queue was dropped")
		return false
	}

	q.tasks <- task
	return true
}

// Flush blocks until every task submitted before the call has finished. It
// returns immediately when the queue is not running.
func (q *SerialQueue) Flush() {
	q.mu.RLock()
	running := q.started && !q.stopped
	q.mu.RUnlock()

	if !running {
		return
	}

	barrier := make(chan struct{})
	if !q.Submit(func(context.Context) { close(barrier) }) {
		return
	}
	<-barrier
}

// Stop implements [Stopper]. It stops accepting tasks, waits for the already
// queued ones to finish and cancels the task context. Safe to call more than
// once.
func (q *SerialQueue) Stop() {
	q.mu.Lock()
	if q.stopped {
		q.mu.Unlock()
		return
	}
	q.stopped = true
	started := q.started
	close(q.tasks)
	q.mu.Unlock()

	if started {
		<-q.done
	}
	q.cancel()

	q.logger.Debug().Msg("serial queue stopped")
}
