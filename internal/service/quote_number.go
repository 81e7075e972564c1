package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-quote-keeper/models"
)

// NextQuoteNumber returns the next sequential quote number for the given
// collection, zero-padded to five digits. Quote numbers that do not parse as
// base-10 integers are ignored, so a hand-edited number never breaks the
// sequence. The result is advisory only: the caller may overwrite it and no
// uniqueness is enforced.
func NextQuoteNumber(invoices []models.Invoice) string {
	highest := 0
	for _, inv := range invoices {
		n, err := strconv.Atoi(strings.TrimSpace(inv.QuoteNumber))
		if err != nil {
			continue
		}
		if n > highest {
			highest = n
		}
	}

	return fmt.Sprintf("%05d", highest+1)
}
