package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── NewEmptyLineItem ──────────────────────────────────────────────────────────

// TestNewEmptyLineItem verifies that a fresh line item carries its id and
// nothing else: all text fields blank, all numeric fields zero.
func TestNewEmptyLineItem(t *testing.T) {
	item := NewEmptyLineItem("li-1")

	assert.Equal(t, "li-1", item.ID)
	assert.Empty(t, item.ItemName)
	assert.Empty(t, item.ProductCode)
	assert.Empty(t, item.ReferImage)
	assert.Zero(t, item.UnitPrice)
	assert.Zero(t, item.Quantity)
	assert.Zero(t, item.Amount)
}

// ── amount recomputation ──────────────────────────────────────────────────────

// TestLineItem_AmountFollowsFactors verifies amount == unitPrice * quantity
// after any update to either factor.
func TestLineItem_AmountFollowsFactors(t *testing.T) {
	tests := []struct {
		name       string
		price      float64
		quantity   int
		wantAmount float64
	}{
		{name: "both zero", price: 0, quantity: 0, wantAmount: 0},
		{name: "price only", price: 12.50, quantity: 0, wantAmount: 0},
		{name: "quantity only", price: 0, quantity: 7, wantAmount: 0},
		{name: "decimal price", price: 12.50, quantity: 3, wantAmount: 37.50},
		{name: "whole values", price: 100, quantity: 2, wantAmount: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := NewEmptyLineItem("li-1")
			item.SetUnitPrice(tt.price)
			item.SetQuantity(tt.quantity)
			assert.InDelta(t, tt.wantAmount, item.Amount, 1e-9)
		})
	}
}

// TestLineItem_ReSetFactorRecomputes verifies that changing a factor after the
// fact updates the cached amount.
func TestLineItem_ReSetFactorRecomputes(t *testing.T) {
	item := NewEmptyLineItem("li-1")
	item.SetUnitPrice(50)
	item.SetQuantity(4)
	require.InDelta(t, 200.0, item.Amount, 1e-9)

	item.SetQuantity(1)
	assert.InDelta(t, 50.0, item.Amount, 1e-9)

	item.SetUnitPrice(0)
	assert.Zero(t, item.Amount)
}

// TestLineItem_OtherFieldsLeaveAmountUntouched verifies that mutating text
// fields does not disturb the cached amount.
func TestLineItem_OtherFieldsLeaveAmountUntouched(t *testing.T) {
	item := NewEmptyLineItem("li-1")
	item.SetUnitPrice(10)
	item.SetQuantity(2)

	item.ItemName = "Padel Court Frame"
	item.ProductCode = "PC-001"
	item.Specifications = "10x20m"
	item.Advantages = "rust proof"
	item.PackingDetails = "1 pallet"
	item.ReferImage = "data:image/png;base64,AAAA"

	assert.InDelta(t, 20.0, item.Amount, 1e-9)
}
