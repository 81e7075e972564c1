package tui

import (
	"github.com/MKhiriev/go-quote-keeper/models"
)

type listLoadedMsg struct {
	invoices []models.Invoice
}

type newInvoiceMsg struct {
	invoice models.Invoice
}

type saveDoneMsg struct {
	invoice models.Invoice
	err     error
}

type deleteDoneMsg struct {
	err error
}

type exportDoneMsg struct {
	path string
	err  error
}
