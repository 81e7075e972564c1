package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-quote-keeper/internal/config"
	"github.com/MKhiriev/go-quote-keeper/internal/logger"
)

// Storages groups all storage-layer components into a single value that can
// be passed around the service layer. Currently it holds only
// [InvoiceRepository]; additional repositories can be added here as the
// feature set grows.
type Storages struct {
	// InvoiceRepository is the blob-backed repository for quotation
	// documents stored locally.
	InvoiceRepository InvoiceRepository
}

// NewStorages initialises the storage layer using the supplied configuration
// and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist. A DSN of
//     [MemoryDSN] skips SQLite entirely and uses a non-persistent in-memory
//     blob store.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [Storages] value wired to a fresh
//     [InvoiceRepository] over the blob store.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(cfg config.AppStorage, clock Clock, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	if cfg.DB.DSN == MemoryDSN {
		return &Storages{
			InvoiceRepository: NewInvoiceRepository(NewMemoryBlobStore(), clock, logger),
		}, nil
	}

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	blobs := NewSQLiteBlobStore(db, logger)

	return &Storages{
		InvoiceRepository: NewInvoiceRepository(blobs, clock, logger),
	}, nil
}
