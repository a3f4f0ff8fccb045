// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied. Callers should use [errors.Is] to match against these values.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, REPLACE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan draft row")

	// ErrScanningRows is returned when iterating the result set fails,
	// typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan draft rows")
)

// Storage-level errors.
var (
	// ErrNilDatabase is returned when a repository is used without an open
	// database handle.
	ErrNilDatabase = errors.New("database handle is not initialised")

	// ErrDraftNotSaved is returned when an INSERT or REPLACE completes without
	// error but affects no rows.
	ErrDraftNotSaved = errors.New("draft was not saved")
)
