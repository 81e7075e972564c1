package store

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-quote-keeper/internal/logger"
)

const (
	selectBlobSQL = `SELECT value FROM blob_store WHERE key = ?`
	upsertBlobSQL = `INSERT INTO blob_store (key,value) VALUES (?,?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:     db,
		logger: logger.Nop(),
	}
}

func newTestBlobStore(t *testing.T, db *sql.DB) BlobStore {
	t.Helper()
	return NewSQLiteBlobStore(newDBFromSQL(db), logger.Nop())
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

// ── Read ──────────────────────────────────────────────────────────────────────

func TestSQLiteBlobStore_Read_Found(t *testing.T) {
	db, mock := newTestDB(t)
	s := newTestBlobStore(t, db)

	mock.ExpectQuery(regexp.QuoteMeta(selectBlobSQL)).
		WithArgs("some_key").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`[{"id":"inv-1"}]`))

	value, ok, err := s.Read(testContext(), "some_key")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"inv-1"}]`, value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteBlobStore_Read_Absent(t *testing.T) {
	db, mock := newTestDB(t)
	s := newTestBlobStore(t, db)

	mock.ExpectQuery(regexp.QuoteMeta(selectBlobSQL)).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	value, ok, err := s.Read(testContext(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteBlobStore_Read_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	s := newTestBlobStore(t, db)

	mock.ExpectQuery(regexp.QuoteMeta(selectBlobSQL)).
		WithArgs("some_key").
		WillReturnError(assert.AnError)

	_, ok, err := s.Read(testContext(), "some_key")
	require.Error(t, err)
	assert.False(t, ok)
	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── Write ─────────────────────────────────────────────────────────────────────

func TestSQLiteBlobStore_Write_Insert(t *testing.T) {
	db, mock := newTestDB(t)
	s := newTestBlobStore(t, db)

	mock.ExpectExec(regexp.QuoteMeta(upsertBlobSQL)).
		WithArgs("some_key", `[]`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := s.Write(testContext(), "some_key", `[]`)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteBlobStore_Write_ExecError(t *testing.T) {
	db, mock := newTestDB(t)
	s := newTestBlobStore(t, db)

	mock.ExpectExec(regexp.QuoteMeta(upsertBlobSQL)).
		WithArgs("some_key", `[]`).
		WillReturnError(assert.AnError)

	err := s.Write(testContext(), "some_key", `[]`)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}
