// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-story-drafts/internal/logger"
)

// DefaultExpiryInterval is used when the job is created with a non-positive
// interval.
const DefaultExpiryInterval = time.Hour

// ExpiryJob periodically removes stale drafts from a loaded store.
type ExpiryJob struct {
	drafts   DraftsService
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewExpiryJob creates a job calling drafts.DeleteExpired on a ticker. The job
// is idle until Start or Run is called.
func NewExpiryJob(drafts DraftsService, interval time.Duration, log *logger.Logger) *ExpiryJob {
	if interval <= 0 {
		interval = DefaultExpiryInterval
	}

	return &ExpiryJob{drafts: drafts, interval: interval, logger: log}
}

// Run implements workers.Worker.
func (j *ExpiryJob) Run() {
	j.Start(context.Background())
}

// Start stops any previously running job, then launches a background
// goroutine that sweeps the store every interval until ctx is cancelled or
// Stop is called. Sweeps are skipped while the store is not loaded.
func (j *ExpiryJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.sweep()
			}
		}
	}()
}

func (j *ExpiryJob) sweep() {
	if !j.drafts.Loaded() {
		return
	}

	if expired := j.drafts.DeleteExpired(); len(expired) > 0 {
		j.logger.Info().
			Str("func", "ExpiryJob.sweep").
			Int("count", len(expired)).
			Msg("expired drafts removed")
	}
}

// Stop cancels the background goroutine and blocks until it has exited. Safe
// to call when the job is not running.
func (j *ExpiryJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
