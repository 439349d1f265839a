package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/workwell/backoffice/internal/core/domain"
	"github.com/workwell/backoffice/internal/core/ports"
)

type invoiceService struct {
	repo ports.InvoiceRepository
	log  zerolog.Logger
}

// NewInvoiceService returns an InvoiceService implementation.
func NewInvoiceService(repo ports.InvoiceRepository, log zerolog.Logger) ports.InvoiceService {
	return &invoiceService{repo: repo, log: log}
}

func (s *invoiceService) ListInvoices(ctx context.Context) ([]*domain.Invoice, error) {
	return s.repo.List(ctx)
}

func (s *invoiceService) GetInvoice(ctx context.Context, id int64) (*domain.Invoice, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *invoiceService) CreateInvoice(ctx context.Context, input ports.CreateInvoiceInput) (*domain.Invoice, error) {
	status := input.Status
	if status == "" {
		status = domain.InvoiceDraft
	}
	if !domain.ValidInvoiceStatus(status) {
		return nil, fmt.Errorf("%w: status %q", domain.ErrInvalidInput, status)
	}

	invoice := &domain.Invoice{
		InvoiceNumber: input.InvoiceNumber,
		ClientName:    input.ClientName,
		ClientPAN:     input.ClientPAN,
		IssueDate:     input.IssueDate,
		DueDate:       input.DueDate,
		Subtotal:      input.Subtotal,
		TaxAmount:     input.TaxAmount,
		TotalAmount:   input.TotalAmount,
		Status:        status,
		CreatedBy:     input.CreatedBy,
	}
	for _, line := range input.Items {
		invoice.Items = append(invoice.Items, domain.InvoiceItem{
			Description: line.Description,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Amount:      line.Amount,
		})
	}

	created, err := s.repo.Create(ctx, invoice)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("invoice_number", created.InvoiceNumber).Int("lines", len(created.Items)).Msg("invoice created")
	return created, nil
}

func (s *invoiceService) UpdateInvoice(ctx context.Context, id int64, input ports.UpdateInvoiceInput) (*domain.Invoice, error) {
	invoice, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.ClientName != nil {
		invoice.ClientName = *input.ClientName
	}
	if input.ClientPAN != nil {
		invoice.ClientPAN = input.ClientPAN
	}
	if input.IssueDate != nil {
		invoice.IssueDate = *input.IssueDate
	}
	if input.DueDate != nil {
		invoice.DueDate = input.DueDate
	}
	if input.Subtotal != nil {
		invoice.Subtotal = *input.Subtotal
	}
	if input.TaxAmount != nil {
		invoice.TaxAmount = *input.TaxAmount
	}
	if input.TotalAmount != nil {
		invoice.TotalAmount = *input.TotalAmount
	}
	if input.Status != nil {
		if !domain.ValidInvoiceStatus(*input.Status) {
			return nil, fmt.Errorf("%w: status %q", domain.ErrInvalidInput, *input.Status)
		}
		invoice.Status = *input.Status
	}

	return s.repo.Update(ctx, invoice)
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("id", id).Msg("invoice deleted")
	return nil
}
