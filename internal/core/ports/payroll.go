package ports

import (
	"context"
	"time"

	"github.com/workwell/backoffice/internal/core/domain"
)

// PayrollRepository defines persistence operations for payroll records.
// Like attendance, payroll rows are never deleted.
type PayrollRepository interface {
	List(ctx context.Context) ([]*domain.Payroll, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Payroll, error)
	FindByID(ctx context.Context, id int64) (*domain.Payroll, error)
	Create(ctx context.Context, record *domain.Payroll) (*domain.Payroll, error)
	Update(ctx context.Context, record *domain.Payroll) (*domain.Payroll, error)
}

// CreatePayrollInput carries the fields accepted when creating a payroll row.
type CreatePayrollInput struct {
	UserID      int64
	Month       time.Time
	BasicSalary string
	Allowances  string
	Deductions  string
	NetSalary   string
	Status      domain.PayrollStatus
}

// UpdatePayrollInput is a partial update: nil fields are left unchanged.
// Moving Status to "processed" stamps ProcessedAt in the service.
type UpdatePayrollInput struct {
	Month       *time.Time
	BasicSalary *string
	Allowances  *string
	Deductions  *string
	NetSalary   *string
	Status      *domain.PayrollStatus
}

type PayrollService interface {
	ListPayroll(ctx context.Context) ([]*domain.Payroll, error)
	ListUserPayroll(ctx context.Context, userID int64) ([]*domain.Payroll, error)
	CreatePayroll(ctx context.Context, input CreatePayrollInput) (*domain.Payroll, error)
	UpdatePayroll(ctx context.Context, id int64, input UpdatePayrollInput) (*domain.Payroll, error)
}
