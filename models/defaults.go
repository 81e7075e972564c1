package models

// DefaultCompanyInfo returns the built-in profile of the issuing business.
// The profile pre-populates every new quotation and remains editable per
// document.
func DefaultCompanyInfo() CompanyInfo {
	return CompanyInfo{
		Name:    "Newlands Padel",
		Address: "2301 Bayfield Building\n99 Hennessy Road, Wan Chai\nHong Kong",
		Email1:  "Alan@newlandssourcing.com",
		Email2:  "John@piece-of-cake.org",
		Phone1:  "(+44)7594865953",
		Phone2:  "(+852)54839871",
	}
}

// DefaultValidityDays is the validity period applied to new quotations.
const DefaultValidityDays = 30

// DefaultInvoice returns the template for a new quotation: company defaults,
// DDP pricing basis, standard terms, no line items, and zero totals.
// Identity, quote number, date, and timestamps are filled in by the caller.
func DefaultInvoice() Invoice {
	return Invoice{
		Basis:          "DDP",
		CompanyInfo:    DefaultCompanyInfo(),
		ClientInfo:     ClientInfo{},
		LineItems:      []LineItem{},
		Notes:          "MOQ: 1 court",
		Certifications: "All components have passed Official CE testing.",
		Warranty: "Our entire padel court system has a 5 year warranty, with a service time of 8+ years. " +
			"LED lights: 2 years, artificial grass: 5 years, metal structure: 4 years, 12mm tempered glass: 10 years.",
		LeadTime:     "25-30 days",
		PaymentTerms: "T/T 30% deposit, 70% balance before shipment.",
		ValidityDays: DefaultValidityDays,
	}
}
