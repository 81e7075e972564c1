package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItem(id string, price float64, qty int) LineItem {
	item := NewEmptyLineItem(id)
	item.SetUnitPrice(price)
	item.SetQuantity(qty)
	return item
}

// ── Recompute ─────────────────────────────────────────────────────────────────

// TestInvoice_Recompute verifies subtotal == sum(amount) and total == subtotal
// for a representative set of line-item sequences.
func TestInvoice_Recompute(t *testing.T) {
	tests := []struct {
		name  string
		items []LineItem
		want  float64
	}{
		{name: "no items", items: nil, want: 0},
		{name: "single item", items: []LineItem{testItem("a", 12.50, 3)}, want: 37.50},
		{
			name:  "two items",
			items: []LineItem{testItem("a", 100, 2), testItem("b", 50, 1)},
			want:  250,
		},
		{
			name:  "zero amount rows ignored in effect",
			items: []LineItem{testItem("a", 100, 0), testItem("b", 0, 5)},
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := Invoice{LineItems: tt.items}
			inv.Recompute()
			assert.InDelta(t, tt.want, inv.Subtotal, 1e-9)
			assert.Equal(t, inv.Subtotal, inv.Total)
		})
	}
}

// TestInvoice_RecomputeIdempotent verifies that recomputing twice on the same
// sequence yields the same totals.
func TestInvoice_RecomputeIdempotent(t *testing.T) {
	inv := Invoice{LineItems: []LineItem{testItem("a", 100, 2), testItem("b", 50, 1)}}
	inv.Recompute()
	first := inv.Subtotal
	inv.Recompute()
	assert.Equal(t, first, inv.Subtotal)
	assert.Equal(t, inv.Subtotal, inv.Total)
}

// ── line-item sequence ────────────────────────────────────────────────────────

func TestInvoice_AddLineItem(t *testing.T) {
	inv := Invoice{}
	inv.AddLineItem(testItem("a", 100, 2))
	inv.AddLineItem(testItem("b", 50, 1))

	require.Len(t, inv.LineItems, 2)
	assert.Equal(t, "a", inv.LineItems[0].ID)
	assert.Equal(t, "b", inv.LineItems[1].ID)
	assert.InDelta(t, 250.0, inv.Subtotal, 1e-9)
	assert.InDelta(t, 250.0, inv.Total, 1e-9)
}

func TestInvoice_RemoveLineItem(t *testing.T) {
	inv := Invoice{}
	inv.AddLineItem(testItem("a", 100, 2))
	inv.AddLineItem(testItem("b", 50, 1))

	inv.RemoveLineItem("b")
	require.Len(t, inv.LineItems, 1)
	assert.Equal(t, "a", inv.LineItems[0].ID)
	assert.InDelta(t, 200.0, inv.Subtotal, 1e-9)
}

// TestInvoice_RemoveLineItem_UnknownID verifies that removing a non-existent
// id leaves the sequence and totals unchanged.
func TestInvoice_RemoveLineItem_UnknownID(t *testing.T) {
	inv := Invoice{}
	inv.AddLineItem(testItem("a", 100, 2))

	inv.RemoveLineItem("nope")
	require.Len(t, inv.LineItems, 1)
	assert.InDelta(t, 200.0, inv.Subtotal, 1e-9)
}

// TestInvoice_RemoveLineItem_PreservesOrder verifies display order survives a
// removal in the middle of the sequence.
func TestInvoice_RemoveLineItem_PreservesOrder(t *testing.T) {
	inv := Invoice{}
	inv.AddLineItem(testItem("a", 1, 1))
	inv.AddLineItem(testItem("b", 2, 1))
	inv.AddLineItem(testItem("c", 3, 1))

	inv.RemoveLineItem("b")
	require.Len(t, inv.LineItems, 2)
	assert.Equal(t, "a", inv.LineItems[0].ID)
	assert.Equal(t, "c", inv.LineItems[1].ID)
}

func TestInvoice_LineItemLookup(t *testing.T) {
	inv := Invoice{}
	inv.AddLineItem(testItem("a", 1, 1))

	require.NotNil(t, inv.LineItem("a"))
	assert.Nil(t, inv.LineItem("missing"))

	// The pointer aliases the stored row, so in-place edits stick.
	inv.LineItem("a").SetQuantity(5)
	assert.InDelta(t, 5.0, inv.LineItems[0].Amount, 1e-9)
}

// ── persisted schema ──────────────────────────────────────────────────────────

// TestInvoice_JSONFieldNames pins the on-disk field names so a change to the
// struct tags cannot silently break old data.
func TestInvoice_JSONFieldNames(t *testing.T) {
	inv := Invoice{ID: "inv-1"}
	inv.AddLineItem(testItem("li-1", 12.50, 3))

	raw, err := json.Marshal(inv)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))

	for _, field := range []string{
		"id", "quoteNumber", "date", "basis", "companyInfo", "clientInfo",
		"lineItems", "notes", "certifications", "warranty", "leadTime",
		"paymentTerms", "validityDays", "subtotal", "total", "createdAt",
		"updatedAt",
	} {
		assert.Contains(t, m, field)
	}

	items, ok := m["lineItems"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)
	row, ok := items[0].(map[string]any)
	require.True(t, ok)
	for _, field := range []string{
		"id", "referImage", "itemName", "productCode", "specifications",
		"advantages", "packingDetails", "unitPrice", "quantity", "amount",
	} {
		assert.Contains(t, row, field)
	}
}

// TestDefaultInvoice verifies the new-quotation template.
func TestDefaultInvoice(t *testing.T) {
	inv := DefaultInvoice()

	assert.Equal(t, "DDP", inv.Basis)
	assert.Equal(t, "Newlands Padel", inv.CompanyInfo.Name)
	assert.Equal(t, 30, inv.ValidityDays)
	assert.Empty(t, inv.LineItems)
	assert.Zero(t, inv.Subtotal)
	assert.Zero(t, inv.Total)
	assert.Empty(t, inv.ID)
	assert.Empty(t, inv.QuoteNumber)
}
