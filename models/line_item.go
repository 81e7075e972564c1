package models

// LineItem represents a single priced product row within an [Invoice].
// A line item never exists outside its owning invoice and is not persisted
// on its own.
type LineItem struct {
	// ID is the opaque unique identifier of the row, assigned at creation
	// and stable for the item's lifetime.
	ID string `json:"id"`

	// ReferImage is an optional reference image for the product,
	// stored as a base64 payload or a URL. May be empty.
	ReferImage string `json:"referImage"`

	// ItemName is the human-readable product name.
	ItemName string `json:"itemName"`

	// ProductCode is the internal or supplier product code.
	ProductCode string `json:"productCode"`

	// Specifications contains free-form product specification text.
	Specifications string `json:"specifications"`

	// Advantages contains free-form selling-point text.
	Advantages string `json:"advantages"`

	// PackingDetails describes how the product is packed for shipment.
	PackingDetails string `json:"packingDetails"`

	// UnitPrice is the price per unit in the document currency.
	UnitPrice float64 `json:"unitPrice"`

	// Quantity is the number of units quoted.
	Quantity int `json:"quantity"`

	// Amount is the derived row total, always UnitPrice * Quantity.
	// It is never set directly; SetUnitPrice and SetQuantity keep it
	// consistent.
	Amount float64 `json:"amount"`
}

// NewEmptyLineItem returns a blank line item with the given identifier:
// all text fields empty, numeric fields zero.
func NewEmptyLineItem(id string) LineItem {
	return LineItem{ID: id}
}

// SetUnitPrice updates the unit price and recomputes Amount.
func (li *LineItem) SetUnitPrice(price float64) {
	li.UnitPrice = price
	li.recomputeAmount()
}

// SetQuantity updates the quantity and recomputes Amount.
func (li *LineItem) SetQuantity(quantity int) {
	li.Quantity = quantity
	li.recomputeAmount()
}

func (li *LineItem) recomputeAmount() {
	li.Amount = li.UnitPrice * float64(li.Quantity)
}
