// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the background workers of the client.
	Run()

	// Close stops the workers, waits for pending storage work and releases
	// the database.
	Close() error
}
