// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/models"
)

// InvoicesKey is the single blob-store key the whole invoice collection is
// serialized under.
const InvoicesKey = "newlands_padel_invoices"

type invoiceRepository struct {
	blobs  BlobStore
	clock  Clock
	logger *logger.Logger
}

// NewInvoiceRepository returns an [InvoiceRepository] holding the whole
// collection in one blob entry. Every Save and Delete performs a full
// read-modify-write cycle over that entry; with two concurrent writers the
// last full-collection write wins. Acceptable for the single-user,
// single-process assumption this tool is built on.
func NewInvoiceRepository(blobs BlobStore, clock Clock, logger *logger.Logger) InvoiceRepository {
	return &invoiceRepository{
		blobs:  blobs,
		clock:  clock,
		logger: logger,
	}
}

func (r *invoiceRepository) List(ctx context.Context) []models.Invoice {
	log := logger.FromContext(ctx)

	raw, ok, err := r.blobs.Read(ctx, InvoicesKey)
	if err != nil {
		// Read failures degrade to "no data" rather than propagating.
		log.Debug().Err(err).
			Str("func", "invoiceRepository.List").
			Msg("blob read failed, returning empty collection")
		return []models.Invoice{}
	}
	if !ok || raw == "" {
		return []models.Invoice{}
	}

	var invoices []models.Invoice
	if err = json.Unmarshal([]byte(raw), &invoices); err != nil {
		log.Debug().Err(err).
			Str("func", "invoiceRepository.List").
			Msg("blob is not a valid invoice collection, returning empty collection")
		return []models.Invoice{}
	}
	if invoices == nil {
		return []models.Invoice{}
	}

	return invoices
}

func (r *invoiceRepository) Get(ctx context.Context, id string) (models.Invoice, bool) {
	for _, inv := range r.List(ctx) {
		if inv.ID == id {
			return inv, true
		}
	}
	return models.Invoice{}, false
}

func (r *invoiceRepository) Save(ctx context.Context, inv models.Invoice) (models.Invoice, error) {
	log := logger.FromContext(ctx)

	inv.UpdatedAt = r.clock.Now()

	invoices := r.List(ctx)
	replaced := false
	for i := range invoices {
		if invoices[i].ID == inv.ID {
			invoices[i] = inv
			replaced = true
			break
		}
	}
	if !replaced {
		invoices = append(invoices, inv)
	}

	if err := r.writeAll(ctx, invoices); err != nil {
		log.Err(err).
			Str("func", "invoiceRepository.Save").
			Str("invoice_id", inv.ID).
			Msg("failed to persist invoice collection")
		return models.Invoice{}, fmt.Errorf("failed to save invoice (id=%s): %w", inv.ID, err)
	}

	return inv, nil
}

func (r *invoiceRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	invoices := r.List(ctx)
	kept := invoices[:0]
	for _, inv := range invoices {
		if inv.ID != id {
			kept = append(kept, inv)
		}
	}

	if err := r.writeAll(ctx, kept); err != nil {
		log.Err(err).
			Str("func", "invoiceRepository.Delete").
			Str("invoice_id", id).
			Msg("failed to persist invoice collection after delete")
		return fmt.Errorf("failed to delete invoice (id=%s): %w", id, err)
	}

	return nil
}

func (r *invoiceRepository) writeAll(ctx context.Context, invoices []models.Invoice) error {
	if invoices == nil {
		invoices = []models.Invoice{}
	}

	payload, err := json.Marshal(invoices)
	if err != nil {
		return fmt.Errorf("failed to encode invoice collection: %w", err)
	}

	return r.blobs.Write(ctx, InvoicesKey, string(payload))
}
