// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-story-drafts/internal/config"
	"github.com/MKhiriev/go-story-drafts/internal/logger"
	"github.com/MKhiriev/go-story-drafts/internal/store"
)

// Services groups the services of one account.
type Services struct {
	Drafts    DraftsService
	ExpiryJob *ExpiryJob
}

// NewServices wires the drafts store of the configured account.
func NewServices(
	cfg *config.DraftsConfig,
	storages *store.Storages,
	queue StorageQueue,
	notifier Notifier,
	log *logger.Logger,
	opts ...DraftsOption,
) *Services {
	opts = append([]DraftsOption{WithTTL(cfg.TTL)}, opts...)
	drafts := NewDraftsController(storages, queue, notifier, log, opts...)

	return &Services{
		Drafts:    drafts,
		ExpiryJob: NewExpiryJob(drafts, 0, log),
	}
}
