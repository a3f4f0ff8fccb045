// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-story-drafts/internal/config"
	"github.com/MKhiriev/go-story-drafts/internal/logger"
	"github.com/MKhiriev/go-story-drafts/internal/notify"
	"github.com/MKhiriev/go-story-drafts/internal/service"
	"github.com/MKhiriev/go-story-drafts/internal/store"
	"github.com/MKhiriev/go-story-drafts/internal/workers"
	"github.com/MKhiriev/go-story-drafts/models"
)

// App is the drafts client of one account.
type App struct {
	storages *store.Storages
	queue    *workers.SerialQueue
	center   *notify.Center
	services *service.Services
	workers  *workers.Workers
	failed   *failedDrafts
	logger   *logger.Logger

	closeOnce sync.Once
	closeErr  error
}

var _ Client = (*App)(nil)

// NewApp opens the storage of the configured account and builds the drafts
// store on top of it. Workers are started by Run.
func NewApp(ctx context.Context, cfg *config.DraftsConfig, log *logger.Logger, opts ...service.DraftsOption) (*App, error) {
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create drafts storage: %w", err)
	}

	queue := workers.NewSerialQueue("drafts-storage", cfg.QueueSize, log)
	center := notify.NewCenter()
	failed := &failedDrafts{}

	opts = append([]service.DraftsOption{service.WithUploadingSink(failed)}, opts...)
	services := service.NewServices(cfg, storages, queue, center, log, opts...)

	return &App{
		storages: storages,
		queue:    queue,
		center:   center,
		services: services,
		workers:  workers.NewWorkers(queue, services.ExpiryJob),
		failed:   failed,
		logger:   log,
	}, nil
}

// Run starts the storage queue and the expiry job.
func (a *App) Run() {
	a.workers.Run()
	a.logger.Debug().Str("func", "App.Run").Msg("drafts client started")
}

// Drafts returns the drafts store.
func (a *App) Drafts() service.DraftsService {
	return a.services.Drafts
}

// Notifications returns the center the store posts its updates to.
func (a *App) Notifications() *notify.Center {
	return a.center
}

// Load loads the drafts and waits until loading has finished.
func (a *App) Load() {
	a.services.Drafts.Load()
	a.queue.Flush()
}

// Flush waits until every storage task submitted so far has finished.
func (a *App) Flush() {
	a.queue.Flush()
}

// Failed returns the drafts whose upload failed in a previous run. It is
// complete once the queue has been flushed after Run.
func (a *App) Failed() []models.StoryEntry {
	return a.failed.list()
}

// Close implements [Client].
func (a *App) Close() error {
	a.closeOnce.Do(func() {
		a.workers.Stop()
		if err := a.storages.Close(); err != nil {
			a.closeErr = fmt.Errorf("close drafts storage: %w", err)
		}
		a.logger.Debug().Str("func", "App.Close").Msg("drafts client stopped")
	})

	return a.closeErr
}

// failedDrafts keeps the failed drafts handed over by the store.
type failedDrafts struct {
	mu      sync.Mutex
	entries []models.StoryEntry
}

func (f *failedDrafts) Restore(entries []models.StoryEntry) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.entries = append(f.entries, entries...)
}

func (f *failedDrafts) list() []models.StoryEntry {
	f.mu.Lock()
	defer f.mu.Unlock()

	return slices.Clone(f.entries)
}
