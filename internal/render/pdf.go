// Package render produces the printable quotation document.
package render

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/MKhiriev/go-quote-keeper/models"
)

const (
	pageMargin = 10.0
	pageWidth  = 210.0
	usableW    = pageWidth - 2*pageMargin

	lineHeight  = 4.5
	breakLimitY = 270.0
)

// Item table column widths, left to right: product code, item name,
// specifications, advantages, packing details, unit price, quantity, amount.
var itemColWidths = [...]float64{16, 30, 40, 34, 24, 16, 10, 20}

// PDF lays an invoice out as an A4 quotation: header band, meta row,
// billed-to/from blocks, items table, terms, totals.
type PDF struct {
	currency string
}

func NewPDF(currency string) *PDF {
	return &PDF{currency: currency}
}

func (r *PDF) Render(inv models.Invoice) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, pageMargin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	r.header(pdf, tr, inv)
	r.metaRow(pdf, tr, inv)
	r.parties(pdf, tr, inv)
	r.itemsTable(pdf, tr, inv)
	r.terms(pdf, tr, inv)
	r.totals(pdf, tr, inv)
	r.footer(pdf, tr, inv)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}

	return buf.Bytes(), nil
}

func (r *PDF) money(v float64) string {
	return fmt.Sprintf("%s%.2f", r.currency, v)
}

func (r *PDF) header(pdf *gofpdf.Fpdf, tr func(string) string, inv models.Invoice) {
	pdf.SetFillColor(15, 31, 61)
	pdf.Rect(0, 0, pageWidth, 26, "F")

	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 20)
	pdf.SetXY(pageMargin, 7)
	pdf.CellFormat(120, 10, tr(inv.CompanyInfo.Name), "", 0, "L", false, 0, "")

	pdf.SetTextColor(232, 171, 48)
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(usableW-120, 10, "QUOTE", "", 1, "R", false, 0, "")

	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "", 8)
	pdf.SetXY(pageMargin, 17)
	pdf.CellFormat(120, 5, "Premium Padel Court Solutions", "", 1, "L", false, 0, "")

	pdf.SetY(30)
}

func (r *PDF) metaRow(pdf *gofpdf.Fpdf, tr func(string) string, inv models.Invoice) {
	colW := usableW / 3

	labels := [3]string{"QUOTE NO.", "DATE", "BASIS"}
	values := [3]string{inv.QuoteNumber, inv.Date, inv.Basis}

	pdf.SetTextColor(207, 140, 23)
	pdf.SetFont("Arial", "B", 7)
	for _, label := range labels {
		pdf.CellFormat(colW, 4, label, "", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Arial", "B", 11)
	for _, value := range values {
		pdf.CellFormat(colW, 6, tr(value), "", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetDrawColor(229, 231, 235)
	pdf.Line(pageMargin, pdf.GetY()+2, pageWidth-pageMargin, pdf.GetY()+2)
	pdf.SetY(pdf.GetY() + 5)
}

func (r *PDF) parties(pdf *gofpdf.Fpdf, tr func(string) string, inv models.Invoice) {
	colW := usableW / 2
	top := pdf.GetY()

	clientName := inv.ClientInfo.Name
	if clientName == "" {
		clientName = "Client Name"
	}
	billedTo := []string{clientName, inv.ClientInfo.Address, inv.ClientInfo.Email, inv.ClientInfo.Phone}
	from := []string{
		inv.CompanyInfo.Name, inv.CompanyInfo.Address,
		inv.CompanyInfo.Email1, inv.CompanyInfo.Email2,
		inv.CompanyInfo.Phone1, inv.CompanyInfo.Phone2,
	}

	bottom := r.party(pdf, tr, pageMargin, top, colW, "BILLED TO", billedTo)
	if fromBottom := r.party(pdf, tr, pageMargin+colW, top, colW, "FROM", from); fromBottom > bottom {
		bottom = fromBottom
	}

	pdf.SetY(bottom + 4)
}

// party draws one address block and returns the y coordinate below it. The
// first line is the party name; empty lines are skipped.
func (r *PDF) party(pdf *gofpdf.Fpdf, tr func(string) string, x, y, w float64, label string, lines []string) float64 {
	pdf.SetXY(x, y)
	pdf.SetTextColor(207, 140, 23)
	pdf.SetFont("Arial", "B", 7)
	pdf.CellFormat(w, 4, label, "", 2, "L", false, 0, "")

	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Arial", "B", 10)
	pdf.MultiCell(w, 5, tr(lines[0]), "", "L", false)

	pdf.SetFont("Arial", "", 8)
	for _, line := range lines[1:] {
		if line == "" {
			continue
		}
		pdf.SetX(x)
		pdf.MultiCell(w, 4, tr(line), "", "L", false)
	}

	return pdf.GetY()
}

func (r *PDF) itemsTable(pdf *gofpdf.Fpdf, tr func(string) string, inv models.Invoice) {
	r.itemsHeader(pdf)

	if len(inv.LineItems) == 0 {
		pdf.SetTextColor(156, 163, 175)
		pdf.SetFont("Arial", "", 8)
		pdf.CellFormat(usableW, 8, "No items", "", 1, "C", false, 0, "")
		return
	}

	for i, item := range inv.LineItems {
		cells := [len(itemColWidths)]string{
			item.ProductCode,
			item.ItemName,
			item.Specifications,
			item.Advantages,
			item.PackingDetails,
			r.money(item.UnitPrice),
			fmt.Sprintf("%d", item.Quantity),
			r.money(item.Amount),
		}

		pdf.SetFont("Arial", "", 8)
		rowH := lineHeight
		for col, text := range cells {
			h := float64(len(pdf.SplitText(tr(text), itemColWidths[col]-2))) * lineHeight
			if h > rowH {
				rowH = h
			}
		}
		rowH += 2

		if pdf.GetY()+rowH > breakLimitY {
			pdf.AddPage()
			r.itemsHeader(pdf)
		}

		if i%2 == 0 {
			pdf.SetFillColor(249, 250, 251)
			pdf.Rect(pageMargin, pdf.GetY(), usableW, rowH, "F")
		}

		x := pageMargin
		y := pdf.GetY()
		pdf.SetTextColor(20, 20, 20)
		for col, text := range cells {
			align := "L"
			if col >= 5 {
				align = "R"
			}
			pdf.SetXY(x+1, y+1)
			pdf.MultiCell(itemColWidths[col]-2, lineHeight, tr(text), "", align, false)
			x += itemColWidths[col]
		}

		pdf.SetDrawColor(229, 231, 235)
		pdf.Line(pageMargin, y+rowH, pageWidth-pageMargin, y+rowH)
		pdf.SetXY(pageMargin, y+rowH)
	}
}

func (r *PDF) itemsHeader(pdf *gofpdf.Fpdf) {
	headers := [len(itemColWidths)]string{
		"Ref", "Item", "Product Specifications", "Advantages",
		"Details", "Unit Price", "QTY", "Amount",
	}

	pdf.SetFillColor(38, 55, 89)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 7)
	for col, h := range headers {
		align := "L"
		if col >= 5 {
			align = "R"
		}
		pdf.CellFormat(itemColWidths[col], 7, h, "", 0, align, true, 0, "")
	}
	pdf.Ln(-1)
}

func (r *PDF) terms(pdf *gofpdf.Fpdf, tr func(string) string, inv models.Invoice) {
	pdf.SetY(pdf.GetY() + 3)
	pdf.SetTextColor(55, 65, 81)

	termLines := []struct {
		label string
		text  string
	}{
		{"", inv.Notes},
		{"Certifications: ", inv.Certifications},
		{"Warranty: ", inv.Warranty},
		{"Mass Production Lead Time: ", inv.LeadTime},
		{"Payment terms: ", inv.PaymentTerms},
	}
	for _, line := range termLines {
		if line.text == "" {
			continue
		}
		pdf.SetFont("Arial", "", 8)
		pdf.SetX(pageMargin)
		pdf.MultiCell(usableW, 4, tr(line.label+line.text), "", "L", false)
	}

	validity := fmt.Sprintf(
		"This quotation is valid for %d days from date of issue. All prices are %s unless otherwise stated. Prices subject to final confirmation and availability.",
		inv.ValidityDays, inv.Basis,
	)
	pdf.SetTextColor(107, 114, 128)
	pdf.SetFont("Arial", "I", 7)
	pdf.SetX(pageMargin)
	pdf.MultiCell(usableW, 3.5, tr(validity), "", "L", false)
}

func (r *PDF) totals(pdf *gofpdf.Fpdf, tr func(string) string, inv models.Invoice) {
	boxW := 64.0
	x := pageWidth - pageMargin - boxW
	pdf.SetY(pdf.GetY() + 4)

	pdf.SetX(x)
	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(boxW/2, 5, "Subtotal", "", 0, "L", false, 0, "")
	pdf.CellFormat(boxW/2, 5, tr(r.money(inv.Subtotal)), "", 1, "R", false, 0, "")

	pdf.SetDrawColor(229, 231, 235)
	pdf.Line(x, pdf.GetY(), x+boxW, pdf.GetY())

	pdf.SetX(x)
	pdf.SetTextColor(15, 31, 61)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(boxW/2, 7, "TOTAL", "", 0, "L", false, 0, "")
	pdf.CellFormat(boxW/2, 7, tr(r.money(inv.Total)), "", 1, "R", false, 0, "")
}

func (r *PDF) footer(pdf *gofpdf.Fpdf, tr func(string) string, inv models.Invoice) {
	pdf.SetFillColor(15, 31, 61)
	pdf.Rect(0, 283, pageWidth, 14, "F")

	pdf.SetXY(pageMargin, 284)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 8)
	pdf.CellFormat(usableW, 5, tr(inv.CompanyInfo.Name), "", 1, "C", false, 0, "")

	contact := inv.CompanyInfo.Email1 + " | " + inv.CompanyInfo.Phone1
	pdf.SetX(pageMargin)
	pdf.SetFont("Arial", "", 7)
	pdf.CellFormat(usableW, 4, tr(contact), "", 1, "C", false, 0, "")
}
