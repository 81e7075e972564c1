package store

import (
	"context"

	"github.com/MKhiriev/go-quote-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// BlobStore is an opaque key-value persistence mechanism holding serialized
// application state. The invoice collection lives under a single fixed key.
type BlobStore interface {
	// Read returns the value stored under key. ok is false when the key is
	// absent. An error is returned only for storage-level failures.
	Read(ctx context.Context, key string) (value string, ok bool, err error)

	// Write stores value under key, replacing any previous value.
	Write(ctx context.Context, key, value string) error
}

// Clock produces the current timestamp in ISO 8601 form, used to stamp
// updatedAt on save.
type Clock interface {
	Now() string
}

// InvoiceRepository is the durable mapping from invoice identifier to
// invoice record, backed by one serialized blob entry.
type InvoiceRepository interface {
	// List returns every stored invoice. Absent or corrupt data degrades
	// to an empty collection and is never surfaced as an error.
	List(ctx context.Context) []models.Invoice

	// Get returns the invoice with the given id. ok is false when no such
	// invoice is stored.
	Get(ctx context.Context, id string) (inv models.Invoice, ok bool)

	// Save upserts the invoice: an existing record with the same id is
	// replaced in place, otherwise the invoice is appended. The stored
	// record's updatedAt is stamped with the current time; the stamped
	// invoice is returned. Write failures propagate.
	Save(ctx context.Context, inv models.Invoice) (models.Invoice, error)

	// Delete removes the invoice with the given id. Deleting an unknown id
	// leaves the collection unchanged.
	Delete(ctx context.Context, id string) error
}
