// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/internal/mock"
	"github.com/MKhiriev/go-quote-keeper/models"
)

func newTestInvoiceSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	InvoiceService,
	*mock.MockInvoiceRepository,
	*mock.MockServiceClock,
	*mock.MockIDGenerator,
) {
	t.Helper()
	mockRepo := mock.NewMockInvoiceRepository(ctrl)
	mockClock := mock.NewMockServiceClock(ctrl)
	mockIDs := mock.NewMockIDGenerator(ctrl)

	svc := NewInvoiceService(mockRepo, mockClock, mockIDs, logger.Nop())
	return svc, mockRepo, mockClock, mockIDs
}

// ── NewInvoice ───────────────────────────────────────────────────────────────

func TestInvoiceService_NewInvoice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockClock, mockIDs := newTestInvoiceSvc(t, ctrl)
	ctx := t.Context()

	mockClock.EXPECT().Now().Return("2026-02-01T10:00:00.000Z")
	mockClock.EXPECT().Today().Return("2026-02-01")
	mockIDs.EXPECT().Generate().Return("invoice-id")
	mockIDs.EXPECT().Generate().Return("item-id")
	mockRepo.EXPECT().List(ctx).Return([]models.Invoice{{QuoteNumber: "00004"}})

	inv := svc.NewInvoice(ctx)

	assert.Equal(t, "invoice-id", inv.ID)
	assert.Equal(t, "00005", inv.QuoteNumber)
	assert.Equal(t, "2026-02-01", inv.Date)
	assert.Equal(t, "2026-02-01T10:00:00.000Z", inv.CreatedAt)
	assert.Equal(t, "2026-02-01T10:00:00.000Z", inv.UpdatedAt)
	assert.Equal(t, models.DefaultCompanyInfo(), inv.CompanyInfo)
	require.Len(t, inv.LineItems, 1)
	assert.Equal(t, "item-id", inv.LineItems[0].ID)
	assert.Zero(t, inv.Subtotal)
	assert.Zero(t, inv.Total)
}

func TestInvoiceService_NewInvoice_EmptyCollection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockClock, mockIDs := newTestInvoiceSvc(t, ctrl)
	ctx := t.Context()

	mockClock.EXPECT().Now().Return("2026-02-01T10:00:00.000Z")
	mockClock.EXPECT().Today().Return("2026-02-01")
	mockIDs.EXPECT().Generate().Return("invoice-id")
	mockIDs.EXPECT().Generate().Return("item-id")
	mockRepo.EXPECT().List(ctx).Return([]models.Invoice{})

	inv := svc.NewInvoice(ctx)

	assert.Equal(t, "00001", inv.QuoteNumber)
}

// ── List ─────────────────────────────────────────────────────────────────────

// TestInvoiceService_List checks that listing orders by updatedAt, most
// recent first, regardless of stored order.
func TestInvoiceService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newTestInvoiceSvc(t, ctrl)
	ctx := t.Context()

	mockRepo.EXPECT().List(ctx).Return([]models.Invoice{
		{ID: "old", UpdatedAt: "2026-01-01T00:00:00.000Z"},
		{ID: "new", UpdatedAt: "2026-03-01T00:00:00.000Z"},
		{ID: "mid", UpdatedAt: "2026-02-01T00:00:00.000Z"},
	})

	invoices := svc.List(ctx)

	require.Len(t, invoices, 3)
	assert.Equal(t, "new", invoices[0].ID)
	assert.Equal(t, "mid", invoices[1].ID)
	assert.Equal(t, "old", invoices[2].ID)
}

// ── Save ─────────────────────────────────────────────────────────────────────

// TestInvoiceService_Save_Recomputes checks that stale totals are recomputed
// before the invoice reaches the repository.
func TestInvoiceService_Save_Recomputes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newTestInvoiceSvc(t, ctrl)
	ctx := t.Context()

	inv := models.Invoice{
		ID: "inv-1",
		LineItems: []models.LineItem{
			{ID: "li-1", UnitPrice: 100, Quantity: 2, Amount: 200},
			{ID: "li-2", UnitPrice: 50, Quantity: 1, Amount: 50},
		},
		Subtotal: 0,
		Total:    0,
	}

	mockRepo.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, persisted models.Invoice) (models.Invoice, error) {
			assert.Equal(t, 250.0, persisted.Subtotal)
			assert.Equal(t, 250.0, persisted.Total)
			persisted.UpdatedAt = "2026-02-01T10:00:00.000Z"
			return persisted, nil
		})

	saved, err := svc.Save(ctx, inv)
	require.NoError(t, err)
	assert.Equal(t, 250.0, saved.Total)
	assert.Equal(t, "2026-02-01T10:00:00.000Z", saved.UpdatedAt)
}

func TestInvoiceService_Save_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newTestInvoiceSvc(t, ctrl)
	ctx := t.Context()

	mockRepo.EXPECT().Save(ctx, gomock.Any()).Return(models.Invoice{}, assert.AnError)

	_, err := svc.Save(ctx, models.Invoice{ID: "inv-1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestInvoiceService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newTestInvoiceSvc(t, ctrl)
	ctx := t.Context()

	mockRepo.EXPECT().Delete(ctx, "inv-1").Return(nil)

	require.NoError(t, svc.Delete(ctx, "inv-1"))
}

func TestInvoiceService_Delete_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newTestInvoiceSvc(t, ctrl)
	ctx := t.Context()

	mockRepo.EXPECT().Delete(ctx, "inv-1").Return(assert.AnError)

	err := svc.Delete(ctx, "inv-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}
