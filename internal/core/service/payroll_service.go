package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/workwell/backoffice/internal/core/domain"
	"github.com/workwell/backoffice/internal/core/ports"
)

type payrollService struct {
	repo ports.PayrollRepository
	log  zerolog.Logger
}

// NewPayrollService returns a PayrollService implementation.
func NewPayrollService(repo ports.PayrollRepository, log zerolog.Logger) ports.PayrollService {
	return &payrollService{repo: repo, log: log}
}

func (s *payrollService) ListPayroll(ctx context.Context) ([]*domain.Payroll, error) {
	return s.repo.List(ctx)
}

func (s *payrollService) ListUserPayroll(ctx context.Context, userID int64) ([]*domain.Payroll, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *payrollService) CreatePayroll(ctx context.Context, input ports.CreatePayrollInput) (*domain.Payroll, error) {
	status := input.Status
	if status == "" {
		status = domain.PayrollPending
	}
	if !domain.ValidPayrollStatus(status) {
		return nil, fmt.Errorf("%w: status %q", domain.ErrInvalidInput, status)
	}
	allowances := input.Allowances
	if allowances == "" {
		allowances = "0"
	}
	deductions := input.Deductions
	if deductions == "" {
		deductions = "0"
	}

	record := &domain.Payroll{
		UserID:      input.UserID,
		Month:       input.Month,
		BasicSalary: input.BasicSalary,
		Allowances:  allowances,
		Deductions:  deductions,
		NetSalary:   input.NetSalary,
		Status:      status,
	}

	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("user_id", created.UserID).Str("month", created.Month.Format("2006-01")).Msg("payroll record created")
	return created, nil
}

func (s *payrollService) UpdatePayroll(ctx context.Context, id int64, input ports.UpdatePayrollInput) (*domain.Payroll, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Month != nil {
		record.Month = *input.Month
	}
	if input.BasicSalary != nil {
		record.BasicSalary = *input.BasicSalary
	}
	if input.Allowances != nil {
		record.Allowances = *input.Allowances
	}
	if input.Deductions != nil {
		record.Deductions = *input.Deductions
	}
	if input.Status != nil {
		if !domain.ValidPayrollStatus(*input.Status) {
			return nil, fmt.Errorf("%w: status %q", domain.ErrInvalidInput, *input.Status)
		}
		// First move into processed (or beyond) stamps the processing time.
		if record.Status == domain.PayrollPending && *input.Status != domain.PayrollPending && record.ProcessedAt == nil {
			now := time.Now().UTC()
			record.ProcessedAt = &now
		}
		record.Status = *input.Status
	}
	if input.NetSalary != nil {
		record.NetSalary = *input.NetSalary
	}

	return s.repo.Update(ctx, record)
}
