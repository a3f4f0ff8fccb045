// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// ErrDraftNotFound is returned when no visible draft has the requested id.
var ErrDraftNotFound = errors.New("draft not found")
