package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-quote-keeper/internal/logger"
)

const blobTable = "blob_store"

type sqliteBlobStore struct {
	*DB
	logger *logger.Logger
}

// NewSQLiteBlobStore returns a [BlobStore] persisting values in the
// blob_store table of the local SQLite database.
func NewSQLiteBlobStore(db *DB, logger *logger.Logger) BlobStore {
	return &sqliteBlobStore{
		DB:     db,
		logger: logger,
	}
}

func (s *sqliteBlobStore) Read(ctx context.Context, key string) (string, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("value").
		From(blobTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "sqliteBlobStore.Read").
			Str("key", key).
			Msg("failed to build select query")
		return "", false, fmt.Errorf("failed to build blob select query: %w", err)
	}

	var value string
	row := s.DB.QueryRowContext(ctx, query, args...)
	if scanErr := row.Scan(&value); scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return "", false, nil
		}
		log.Err(scanErr).
			Str("func", "sqliteBlobStore.Read").
			Str("key", key).
			Msg("failed to scan blob row")
		return "", false, fmt.Errorf("failed to read blob (key=%s): %w", key, scanErr)
	}

	return value, true, nil
}

func (s *sqliteBlobStore) Write(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Insert(blobTable).
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value").
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "sqliteBlobStore.Write").
			Str("key", key).
			Msg("failed to build upsert query")
		return fmt.Errorf("failed to build blob upsert query: %w", err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sqliteBlobStore.Write").
			Str("key", key).
			Msg("failed to execute upsert for blob")
		return fmt.Errorf("failed to write blob (key=%s): %w", key, err)
	}

	return nil
}
