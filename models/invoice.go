// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CompanyInfo is the profile of the issuing business printed in the
// quotation header. Defaults come from [DefaultCompanyInfo] and every field
// stays freely editable.
type CompanyInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Email1  string `json:"email1"`
	Email2  string `json:"email2"`
	Phone1  string `json:"phone1"`
	Phone2  string `json:"phone2"`
}

// ClientInfo identifies the quoted client. All fields are optional.
type ClientInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// Invoice is the aggregate quotation document: issuing company, client,
// ordered line items, commercial terms, and derived totals.
//
// Identity and timestamps:
//   - ID is assigned once at creation and never changes.
//   - CreatedAt is set once at creation.
//   - UpdatedAt is stamped by the persistence layer on every successful save.
//
// Timestamps are ISO 8601 strings, matching the persisted record schema.
type Invoice struct {
	ID string `json:"id"`

	// QuoteNumber is a display string suggested by the quote-number
	// generator. It is freely editable and not guaranteed to be unique.
	QuoteNumber string `json:"quoteNumber"`

	// Date is the issue date in YYYY-MM-DD form.
	Date string `json:"date"`

	// Basis is the pricing basis label, e.g. "DDP".
	Basis string `json:"basis"`

	CompanyInfo CompanyInfo `json:"companyInfo"`
	ClientInfo  ClientInfo  `json:"clientInfo"`

	// LineItems is an ordered sequence; the order determines display and
	// print order.
	LineItems []LineItem `json:"lineItems"`

	Notes          string `json:"notes"`
	Certifications string `json:"certifications"`
	Warranty       string `json:"warranty"`
	LeadTime       string `json:"leadTime"`
	PaymentTerms   string `json:"paymentTerms"`

	// ValidityDays is the quotation validity period in days.
	ValidityDays int `json:"validityDays"`

	// Subtotal is derived: the sum of all line-item amounts.
	Subtotal float64 `json:"subtotal"`

	// Total is derived and currently always equal to Subtotal; no tax or
	// discount is modelled.
	Total float64 `json:"total"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// Recompute recalculates the derived totals from the current line items.
// It is pure and idempotent, and must run before any save or render so that
// persisted and exported totals are never stale.
func (inv *Invoice) Recompute() {
	var subtotal float64
	for _, item := range inv.LineItems {
		subtotal += item.Amount
	}
	inv.Subtotal = subtotal
	inv.Total = subtotal
}

// AddLineItem appends item to the sequence and recomputes totals.
func (inv *Invoice) AddLineItem(item LineItem) {
	inv.LineItems = append(inv.LineItems, item)
	inv.Recompute()
}

// RemoveLineItem removes the item with the given id, preserving the order of
// the remaining items, and recomputes totals. Removing an unknown id is a
// no-op.
func (inv *Invoice) RemoveLineItem(id string) {
	kept := inv.LineItems[:0]
	for _, item := range inv.LineItems {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	inv.LineItems = kept
	inv.Recompute()
}

// LineItem returns a pointer to the line item with the given id, or nil if
// the invoice has no such item.
func (inv *Invoice) LineItem(id string) *LineItem {
	for i := range inv.LineItems {
		if inv.LineItems[i].ID == id {
			return &inv.LineItems[i]
		}
	}
	return nil
}
