// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.MatchExpectationsInOrder(false)
	mock.ExpectExec(".*").WillReturnError(errors.New("disk full"))
	mock.ExpectQuery(".*").WillReturnError(errors.New("disk full"))

	err = Migrate(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestMigrate_CreatesStoryDrafts(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "drafts.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(db))
	// applying twice is a no-op
	require.NoError(t, Migrate(db))

	_, err = db.Exec(`INSERT INTO story_drafts (id, date, data, type) VALUES (1, 2, x'00', 0)`)
	require.NoError(t, err)

	var count int
	require.NoError(t, db.QueryRow(`SELECT count(*) FROM story_drafts WHERE type IN (0, 1)`).Scan(&count))
	assert.Equal(t, 1, count)
}
