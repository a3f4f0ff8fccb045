// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-story-drafts/internal/logger"
	"github.com/MKhiriev/go-story-drafts/models"
)

// draftRepository is the SQLite-backed implementation of [DraftRepository].
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that statements executed from the storage queue
// are traced with the queue name.
type draftRepository struct {
	*DB
	logger *logger.Logger
}

// NewDraftRepository constructs a [DraftRepository] backed by the provided
// database connection and logger.
func NewDraftRepository(db *DB, logger *logger.Logger) DraftRepository {
	return &draftRepository{
		DB:     db,
		logger: logger,
	}
}

// GetDrafts retrieves the rows of the requested buckets ordered by date,
// newest first.
//
// Returns an empty slice when nothing is stored.
func (d *draftRepository) GetDrafts(ctx context.Context, types ...models.DraftType) ([]models.DraftRow, error) {
	log := logger.FromContext(ctx)

	if d.DB == nil || d.DB.DB == nil {
		return nil, ErrNilDatabase
	}

	query, args, err := buildGetDraftsQuery(ctx, types...)
	if err != nil {
		log.Err(err).
			Str("func", "draftRepository.GetDrafts").
			Msg("failed to create query")
		return nil, err
	}

	rows, err := d.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "draftRepository.GetDrafts").
			Int("types count", len(types)).
			Msg("failed to execute query for getting drafts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.DraftRow, 0, 16)

	for rows.Next() {
		var (
			row       models.DraftRow
			draftType int64
		)

		if scanErr := rows.Scan(&row.ID, &row.Data, &draftType); scanErr != nil {
			log.Err(scanErr).
				Str("func", "draftRepository.GetDrafts").
				Msg("failed to scan draft row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		row.Type = models.DraftType(draftType)

		results = append(results, row)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "draftRepository.GetDrafts").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// InsertDraft stores a new draft row.
func (d *draftRepository) InsertDraft(ctx context.Context, row models.DraftRow) error {
	query, args, err := buildInsertDraftQuery(ctx, row)
	if err != nil {
		return err
	}

	return d.write(ctx, "draftRepository.InsertDraft", row.ID, query, args)
}

// ReplaceDraft stores the row, overwriting any row with the same id.
func (d *draftRepository) ReplaceDraft(ctx context.Context, row models.DraftRow) error {
	query, args, err := buildReplaceDraftQuery(ctx, row)
	if err != nil {
		return err
	}

	return d.write(ctx, "draftRepository.ReplaceDraft", row.ID, query, args)
}

func (d *draftRepository) write(ctx context.Context, funcName string, id int64, query string, args []any) error {
	log := logger.FromContext(ctx)

	if d.DB == nil || d.DB.DB == nil {
		return ErrNilDatabase
	}

	result, err := d.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Int64("draft_id", id).
			Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Int64("draft_id", id).
			Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		log.Error().
			Str("func", funcName).
			Int64("draft_id", id).
			Msg("no rows were written")
		return ErrDraftNotSaved
	}

	log.Debug().
		Str("func", funcName).
		Int64("draft_id", id).
		Msg("draft saved")

	return nil
}

// DeleteDrafts removes the rows with the given ids. A call without ids does
// not touch the database.
func (d *draftRepository) DeleteDrafts(ctx context.Context, ids ...int64) error {
	log := logger.FromContext(ctx)

	if len(ids) == 0 {
		return nil
	}
	if d.DB == nil || d.DB.DB == nil {
		return ErrNilDatabase
	}

	query, args, err := buildDeleteDraftsQuery(ctx, ids...)
	if err != nil {
		log.Err(err).
			Str("func", "draftRepository.DeleteDrafts").
			Msg("failed to create query")
		return err
	}

	result, err := d.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "draftRepository.DeleteDrafts").
			Int("ids count", len(ids)).
			Msg("failed to execute delete statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, _ := result.RowsAffected()
	log.Debug().
		Str("func", "draftRepository.DeleteDrafts").
		Int("ids count", len(ids)).
		Int64("deleted", affected).
		Msg("drafts deleted")

	return nil
}
