package domain

import "math"

// LineItem is a single goods or service line recognised on an invoice.
type LineItem struct {
	Name   string
	Qty    float64
	Unit   string
	Price  float64
	Amount float64
}

// OCRResult holds the structured fields read off an invoice image.
type OCRResult struct {
	// InvoiceCode is the issuing authority code printed on the invoice.
	InvoiceCode string

	// InvoiceNo is the invoice serial number.
	InvoiceNo string

	// Date is the issue date as printed (YYYY-MM-DD).
	Date string

	Seller string
	Buyer  string
	Items  []LineItem

	// TaxRate is kept as printed, e.g. "13%".
	TaxRate string

	Tax   float64
	Total float64
}

// NLPResult is the account classification suggested for an invoice.
type NLPResult struct {
	Category         string
	SuggestedSubject string
	DebitAccount     string
	CreditAccount    string

	// TaxAccount is empty when the input tax is not deductible.
	TaxAccount string

	// Confidence is in [0, 1].
	Confidence float64

	Tags []string
}

// EntryDirection marks a voucher entry as a debit or a credit.
type EntryDirection string

const (
	// Debit is the 借 side of a voucher.
	Debit EntryDirection = "借"
	// Credit is the 贷 side of a voucher.
	Credit EntryDirection = "贷"
)

// String returns the direction as printed on a voucher.
func (d EntryDirection) String() string {
	return string(d)
}

// VoucherEntry is one line of an accounting voucher.
type VoucherEntry struct {
	Direction EntryDirection
	Account   string
	Amount    float64
}

// Voucher is the accounting voucher generated for an invoice.
type Voucher struct {
	Entries []VoucherEntry
	Summary string
}

// Totals returns the summed debit and credit amounts.
func (v Voucher) Totals() (debit, credit float64) {
	for _, e := range v.Entries {
		switch e.Direction {
		case Debit:
			debit += e.Amount
		case Credit:
			credit += e.Amount
		}
	}
	return debit, credit
}

// Balanced reports whether debits equal credits to the cent.
func (v Voucher) Balanced() bool {
	debit, credit := v.Totals()
	return math.Abs(debit-credit) < 0.005
}

// Document is a sample invoice together with its pre-computed processing results.
// Documents come from the fixture catalog and are never mutated.
type Document struct {
	// ID is the invoice identifier, e.g. "INV-2024-002".
	ID string

	// Name is the display name.
	Name string

	// Label is the short sample label shown while the sample is being scanned.
	Label string

	OCR     OCRResult
	NLP     NLPResult
	Voucher Voucher
}
