// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/internal/store"
	"github.com/MKhiriev/go-quote-keeper/models"
)

type invoiceService struct {
	repo   store.InvoiceRepository
	clock  Clock
	ids    IDGenerator
	logger *logger.Logger
}

func NewInvoiceService(repo store.InvoiceRepository, clock Clock, ids IDGenerator, logger *logger.Logger) InvoiceService {
	return &invoiceService{
		repo:   repo,
		clock:  clock,
		ids:    ids,
		logger: logger,
	}
}

func (s *invoiceService) List(ctx context.Context) []models.Invoice {
	invoices := s.repo.List(ctx)

	// ISO 8601 timestamps order lexicographically.
	sort.SliceStable(invoices, func(i, j int) bool {
		return invoices[i].UpdatedAt > invoices[j].UpdatedAt
	})

	return invoices
}

func (s *invoiceService) Get(ctx context.Context, id string) (models.Invoice, bool) {
	return s.repo.Get(ctx, id)
}

func (s *invoiceService) NewInvoice(ctx context.Context) models.Invoice {
	now := s.clock.Now()

	inv := models.DefaultInvoice()
	inv.ID = s.ids.Generate()
	inv.QuoteNumber = NextQuoteNumber(s.repo.List(ctx))
	inv.Date = s.clock.Today()
	inv.CreatedAt = now
	inv.UpdatedAt = now
	inv.AddLineItem(s.NewLineItem())

	return inv
}

func (s *invoiceService) NewLineItem() models.LineItem {
	return models.NewEmptyLineItem(s.ids.Generate())
}

func (s *invoiceService) Save(ctx context.Context, inv models.Invoice) (models.Invoice, error) {
	inv.Recompute()

	saved, err := s.repo.Save(ctx, inv)
	if err != nil {
		return models.Invoice{}, fmt.Errorf("save invoice: %w", err)
	}

	s.logger.Debug().
		Str("func", "invoiceService.Save").
		Str("invoice_id", saved.ID).
		Str("quote_number", saved.QuoteNumber).
		Msg("invoice saved")

	return saved, nil
}

func (s *invoiceService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}

	s.logger.Debug().
		Str("func", "invoiceService.Delete").
		Str("invoice_id", id).
		Msg("invoice deleted")

	return nil
}
