// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the drafts client runtime.
//
// It wires the drafts database, the storage queue, the notification center
// and the drafts store of one account into a single process lifecycle.
package client
