package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/workwell/backoffice/internal/core/domain"
	"github.com/workwell/backoffice/internal/core/ports"
)

type stubPayrollRepo struct {
	records map[int64]*domain.Payroll
	nextID  int64
}

func newStubPayrollRepo() *stubPayrollRepo {
	return &stubPayrollRepo{records: make(map[int64]*domain.Payroll)}
}

func clonePayroll(p *domain.Payroll) *domain.Payroll {
	clone := *p
	return &clone
}

func (r *stubPayrollRepo) List(_ context.Context) ([]*domain.Payroll, error) {
	out := make([]*domain.Payroll, 0, len(r.records))
	for _, p := range r.records {
		out = append(out, clonePayroll(p))
	}
	return out, nil
}

func (r *stubPayrollRepo) ListByUser(_ context.Context, userID int64) ([]*domain.Payroll, error) {
	var out []*domain.Payroll
	for _, p := range r.records {
		if p.UserID == userID {
			out = append(out, clonePayroll(p))
		}
	}
	return out, nil
}

func (r *stubPayrollRepo) FindByID(_ context.Context, id int64) (*domain.Payroll, error) {
	if p, ok := r.records[id]; ok {
		return clonePayroll(p), nil
	}
	return nil, domain.ErrPayrollNotFound
}

func (r *stubPayrollRepo) Create(_ context.Context, record *domain.Payroll) (*domain.Payroll, error) {
	copy := clonePayroll(record)
	r.nextID++
	copy.ID = r.nextID
	r.records[copy.ID] = clonePayroll(copy)
	return clonePayroll(copy), nil
}

func (r *stubPayrollRepo) Update(_ context.Context, record *domain.Payroll) (*domain.Payroll, error) {
	if _, ok := r.records[record.ID]; !ok {
		return nil, domain.ErrPayrollNotFound
	}
	r.records[record.ID] = clonePayroll(record)
	return clonePayroll(record), nil
}

func seedPayroll(t *testing.T, svc ports.PayrollService) *domain.Payroll {
	t.Helper()
	record, err := svc.CreatePayroll(context.Background(), ports.CreatePayrollInput{
		UserID:      3,
		Month:       time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		BasicSalary: "50000.00",
		NetSalary:   "48500.00",
	})
	if err != nil {
		t.Fatalf("seed payroll: %v", err)
	}
	return record
}

func TestPayrollService_Create_Defaults(t *testing.T) {
	svc := NewPayrollService(newStubPayrollRepo(), zerolog.Nop())

	record := seedPayroll(t, svc)
	if record.Status != domain.PayrollPending {
		t.Fatalf("expected default status pending, got %s", record.Status)
	}
	if record.Allowances != "0" || record.Deductions != "0" {
		t.Fatalf("expected zero allowances/deductions, got %s / %s", record.Allowances, record.Deductions)
	}
	if record.ProcessedAt != nil {
		t.Fatalf("pending record must not carry a processing time")
	}
}

func TestPayrollService_RejectsUnknownStatus(t *testing.T) {
	svc := NewPayrollService(newStubPayrollRepo(), zerolog.Nop())

	_, err := svc.CreatePayroll(context.Background(), ports.CreatePayrollInput{
		UserID: 3, Month: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		BasicSalary: "50000.00", NetSalary: "48500.00", Status: "queued",
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	record := seedPayroll(t, svc)
	bad := domain.PayrollStatus("queued")
	if _, err := svc.UpdatePayroll(context.Background(), record.ID, ports.UpdatePayrollInput{Status: &bad}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPayrollService_Update_StampsProcessedAt(t *testing.T) {
	svc := NewPayrollService(newStubPayrollRepo(), zerolog.Nop())
	record := seedPayroll(t, svc)

	processed := domain.PayrollProcessed
	updated, err := svc.UpdatePayroll(context.Background(), record.ID, ports.UpdatePayrollInput{Status: &processed})
	if err != nil {
		t.Fatalf("UpdatePayroll failed: %v", err)
	}
	if updated.Status != domain.PayrollProcessed {
		t.Fatalf("expected processed, got %s", updated.Status)
	}
	if updated.ProcessedAt == nil {
		t.Fatalf("expected ProcessedAt to be stamped")
	}

	// Moving on to paid keeps the original processing time.
	stamped := *updated.ProcessedAt
	paid := domain.PayrollPaid
	updated, err = svc.UpdatePayroll(context.Background(), record.ID, ports.UpdatePayrollInput{Status: &paid})
	if err != nil {
		t.Fatalf("UpdatePayroll failed: %v", err)
	}
	if updated.ProcessedAt == nil || !updated.ProcessedAt.Equal(stamped) {
		t.Fatalf("ProcessedAt changed on second transition: %v vs %v", updated.ProcessedAt, stamped)
	}
}

func TestPayrollService_ListByUser(t *testing.T) {
	repo := newStubPayrollRepo()
	svc := NewPayrollService(repo, zerolog.Nop())

	seedPayroll(t, svc)
	if _, err := svc.CreatePayroll(context.Background(), ports.CreatePayrollInput{
		UserID: 9, Month: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		BasicSalary: "30000.00", NetSalary: "29000.00",
	}); err != nil {
		t.Fatalf("create payroll: %v", err)
	}

	records, err := svc.ListUserPayroll(context.Background(), 3)
	if err != nil {
		t.Fatalf("ListUserPayroll failed: %v", err)
	}
	if len(records) != 1 || records[0].UserID != 3 {
		t.Fatalf("unexpected records: %+v", records)
	}
}
