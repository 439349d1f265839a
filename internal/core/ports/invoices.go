package ports

import (
	"context"
	"time"

	"github.com/workwell/backoffice/internal/core/domain"
)

// InvoiceRepository defines persistence operations for invoices and their
// line items. Create writes the header and all items atomically; Delete
// cascades to items.
type InvoiceRepository interface {
	List(ctx context.Context) ([]*domain.Invoice, error)
	// FindByID returns the invoice with its line items populated.
	FindByID(ctx context.Context, id int64) (*domain.Invoice, error)
	Create(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error)
	Update(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error)
	Delete(ctx context.Context, id int64) error
}

// InvoiceLineInput is one billed line on a new invoice.
type InvoiceLineInput struct {
	Description string
	Quantity    int32
	UnitPrice   string
	Amount      string
}

// CreateInvoiceInput carries the invoice header plus its lines.
// CreatedBy is stamped by the handler from the authenticated user.
type CreateInvoiceInput struct {
	InvoiceNumber string
	ClientName    string
	ClientPAN     *string
	IssueDate     time.Time
	DueDate       *time.Time
	Subtotal      string
	TaxAmount     string
	TotalAmount   string
	Status        domain.InvoiceStatus
	CreatedBy     int64
	Items         []InvoiceLineInput
}

// UpdateInvoiceInput is a partial update of header fields only; line items
// are immutable once the invoice exists.
type UpdateInvoiceInput struct {
	ClientName  *string
	ClientPAN   *string
	IssueDate   *time.Time
	DueDate     *time.Time
	Subtotal    *string
	TaxAmount   *string
	TotalAmount *string
	Status      *domain.InvoiceStatus
}

type InvoiceService interface {
	ListInvoices(ctx context.Context) ([]*domain.Invoice, error)
	GetInvoice(ctx context.Context, id int64) (*domain.Invoice, error)
	CreateInvoice(ctx context.Context, input CreateInvoiceInput) (*domain.Invoice, error)
	UpdateInvoice(ctx context.Context, id int64, input UpdateInvoiceInput) (*domain.Invoice, error)
	DeleteInvoice(ctx context.Context, id int64) error
}
