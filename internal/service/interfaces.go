package service

import (
	"context"

	"github.com/MKhiriev/go-quote-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -mock_names=Clock=MockServiceClock

// Clock supplies the timestamps stamped on invoices.
type Clock interface {
	// Now returns the current instant in ISO 8601 form.
	Now() string
	// Today returns the current date in YYYY-MM-DD form.
	Today() string
}

// IDGenerator produces identifiers for invoices and line items.
type IDGenerator interface {
	Generate() string
}

// InvoiceService is the application-level contract over the stored quote
// collection. All derived totals are recomputed before anything is persisted,
// so records read back are always internally consistent.
type InvoiceService interface {
	// List returns every stored invoice, most recently updated first.
	List(ctx context.Context) []models.Invoice

	// Get returns the invoice with the given id. ok is false when no such
	// invoice exists.
	Get(ctx context.Context, id string) (inv models.Invoice, ok bool)

	// NewInvoice builds an unsaved draft from the default template: fresh id,
	// next sequential quote number, today's date, one blank line item.
	// Nothing is persisted until the draft is saved.
	NewInvoice(ctx context.Context) models.Invoice

	// NewLineItem returns a blank line item with a fresh id.
	NewLineItem() models.LineItem

	// Save recomputes the invoice's totals and upserts it. The persisted
	// record (with its stamped updatedAt) is returned.
	Save(ctx context.Context, inv models.Invoice) (models.Invoice, error)

	// Delete removes the invoice with the given id. Unknown ids are ignored.
	Delete(ctx context.Context, id string) error
}
