// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates an empty account or an account name that
	// cannot be used as a directory name.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidDraftsConfigs indicates a non-positive TTL or queue size.
	ErrInvalidDraftsConfigs = errors.New("invalid drafts configuration")
	// ErrInvalidLogsConfigs indicates an unknown log level.
	ErrInvalidLogsConfigs = errors.New("invalid logs configuration")
)
