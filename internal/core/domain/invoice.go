package domain

import "time"

// InvoiceStatus represents the billing state of an invoice.
type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "draft"
	InvoiceIssued    InvoiceStatus = "issued"
	InvoicePaid      InvoiceStatus = "paid"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

// ValidInvoiceStatus reports whether s belongs to the closed status set.
func ValidInvoiceStatus(s InvoiceStatus) bool {
	switch s {
	case InvoiceDraft, InvoiceIssued, InvoicePaid, InvoiceCancelled:
		return true
	}
	return false
}

// InvoiceItem is a single billed line on an invoice.
type InvoiceItem struct {
	ID          int64  `json:"id"`
	InvoiceID   int64  `json:"invoice_id"`
	Description string `json:"description"`
	Quantity    int32  `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	Amount      string `json:"amount"`
}

// Invoice is a billing document with its line items. Items are loaded only
// when a single invoice is fetched; list responses carry the header alone.
type Invoice struct {
	ID            int64         `json:"id"`
	InvoiceNumber string        `json:"invoice_number"`
	ClientName    string        `json:"client_name"`
	ClientPAN     *string       `json:"client_pan,omitempty"`
	IssueDate     time.Time     `json:"issue_date"`
	DueDate       *time.Time    `json:"due_date,omitempty"`
	Subtotal      string        `json:"subtotal"`
	TaxAmount     string        `json:"tax_amount"`
	TotalAmount   string        `json:"total_amount"`
	Status        InvoiceStatus `json:"status"`
	CreatedBy     int64         `json:"created_by"`
	Items         []InvoiceItem `json:"items,omitempty"`
}
