package service

import (
	"context"

	"github.com/MKhiriev/go-quote-keeper/models"
)

// LineItemField names one editable field of a line item.
type LineItemField int

const (
	LineItemReferImage LineItemField = iota
	LineItemName
	LineItemProductCode
	LineItemSpecifications
	LineItemAdvantages
	LineItemPackingDetails
	LineItemUnitPrice
	LineItemQuantity
)

// EditorSession holds a working copy of one invoice while it is being edited.
// Every mutation applies to the copy only; storage is untouched until Save.
// Numeric line-item input is coerced the moment it is applied and the
// invoice's totals follow synchronously, so the working copy never carries a
// stale amount.
type EditorSession struct {
	invoices InvoiceService

	invoice models.Invoice
	dirty   bool
}

// NewEditorSession starts editing the given invoice. Pass a draft from
// [InvoiceService.NewInvoice] to create, or a stored invoice to edit.
func NewEditorSession(invoices InvoiceService, inv models.Invoice) *EditorSession {
	return &EditorSession{
		invoices: invoices,
		invoice:  inv,
	}
}

// Invoice returns the current working copy.
func (s *EditorSession) Invoice() models.Invoice {
	return s.invoice
}

// Dirty reports whether the working copy has unsaved changes.
func (s *EditorSession) Dirty() bool {
	return s.dirty
}

func (s *EditorSession) SetQuoteNumber(v string) {
	s.invoice.QuoteNumber = v
	s.dirty = true
}

func (s *EditorSession) SetDate(v string) {
	s.invoice.Date = v
	s.dirty = true
}

func (s *EditorSession) SetBasis(v string) {
	s.invoice.Basis = v
	s.dirty = true
}

func (s *EditorSession) SetNotes(v string) {
	s.invoice.Notes = v
	s.dirty = true
}

func (s *EditorSession) SetCertifications(v string) {
	s.invoice.Certifications = v
	s.dirty = true
}

func (s *EditorSession) SetWarranty(v string) {
	s.invoice.Warranty = v
	s.dirty = true
}

func (s *EditorSession) SetLeadTime(v string) {
	s.invoice.LeadTime = v
	s.dirty = true
}

func (s *EditorSession) SetPaymentTerms(v string) {
	s.invoice.PaymentTerms = v
	s.dirty = true
}

// SetValidityDays coerces raw editor input; anything that does not parse as a
// positive integer falls back to the default validity.
func (s *EditorSession) SetValidityDays(raw string) {
	days := models.ParseQuantity(raw)
	if days <= 0 {
		days = models.DefaultValidityDays
	}
	s.invoice.ValidityDays = days
	s.dirty = true
}

func (s *EditorSession) SetCompanyInfo(info models.CompanyInfo) {
	s.invoice.CompanyInfo = info
	s.dirty = true
}

func (s *EditorSession) SetClientInfo(info models.ClientInfo) {
	s.invoice.ClientInfo = info
	s.dirty = true
}

// SetLineItemField applies raw editor input to one field of one line item.
// Unit price and quantity are coerced (malformed input becomes zero) and the
// item's amount plus the invoice totals are recomputed before returning.
// Returns false when no line item has the given id.
func (s *EditorSession) SetLineItemField(id string, field LineItemField, raw string) bool {
	item := s.invoice.LineItem(id)
	if item == nil {
		return false
	}

	switch field {
	case LineItemReferImage:
		item.ReferImage = raw
	case LineItemName:
		item.ItemName = raw
	case LineItemProductCode:
		item.ProductCode = raw
	case LineItemSpecifications:
		item.Specifications = raw
	case LineItemAdvantages:
		item.Advantages = raw
	case LineItemPackingDetails:
		item.PackingDetails = raw
	case LineItemUnitPrice:
		item.SetUnitPrice(models.ParsePrice(raw))
	case LineItemQuantity:
		item.SetQuantity(models.ParseQuantity(raw))
	}

	s.invoice.Recompute()
	s.dirty = true
	return true
}

// AddLineItem appends a blank line item and returns it.
func (s *EditorSession) AddLineItem() models.LineItem {
	item := s.invoices.NewLineItem()
	s.invoice.AddLineItem(item)
	s.dirty = true
	return item
}

// RemoveLineItem drops the line item with the given id and recomputes totals.
// Unknown ids are ignored.
func (s *EditorSession) RemoveLineItem(id string) {
	s.invoice.RemoveLineItem(id)
	s.dirty = true
}

// Save commits the working copy through the service and replaces it with the
// persisted record, clearing the dirty flag. On failure the working copy and
// the dirty flag are left as they were.
func (s *EditorSession) Save(ctx context.Context) (models.Invoice, error) {
	saved, err := s.invoices.Save(ctx, s.invoice)
	if err != nil {
		return models.Invoice{}, err
	}

	s.invoice = saved
	s.dirty = false
	return saved, nil
}
