// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-story-drafts/models"
)

const draftsTable = "story_drafts"

// psql builds SQLite flavoured statements with "?" placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// buildGetDraftsQuery returns the SELECT used on load. Rows are ordered newest
// first so that the in-memory list starts with the latest draft.
func buildGetDraftsQuery(_ context.Context, types ...models.DraftType) (string, []any, error) {
	builder := psql.
		Select("id", "data", "type").
		From(draftsTable).
		OrderBy("date DESC")

	if len(types) > 0 {
		builder = builder.Where(sq.Eq{"type": typesToInt64(types)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildInsertDraftQuery(_ context.Context, row models.DraftRow) (string, []any, error) {
	return buildWriteDraftQuery(psql.Insert(draftsTable), row)
}

func buildReplaceDraftQuery(_ context.Context, row models.DraftRow) (string, []any, error) {
	return buildWriteDraftQuery(psql.Replace(draftsTable), row)
}

func buildWriteDraftQuery(builder sq.InsertBuilder, row models.DraftRow) (string, []any, error) {
	query, args, err := builder.
		Columns("id", "date", "data", "type").
		Values(row.ID, row.Date, row.Data, int64(row.Type)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildDeleteDraftsQuery(_ context.Context, ids ...int64) (string, []any, error) {
	query, args, err := psql.
		Delete(draftsTable).
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func typesToInt64(types []models.DraftType) []int64 {
	out := make([]int64, len(types))
	for i, t := range types {
		out[i] = int64(t)
	}
	return out
}
