package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/workwell/backoffice/internal/core/domain"
)

// PayrollRepository persists payroll records. Rows are never deleted.
type PayrollRepository struct {
	pool *pgxpool.Pool
}

func NewPayrollRepository(pool *pgxpool.Pool) *PayrollRepository {
	return &PayrollRepository{pool: pool}
}

const payrollColumns = `id, user_id, month, basic_salary::text, allowances::text, deductions::text, net_salary::text, status, processed_at`

func scanPayroll(row pgx.Row) (*domain.Payroll, error) {
	var p domain.Payroll
	err := row.Scan(&p.ID, &p.UserID, &p.Month, &p.BasicSalary, &p.Allowances, &p.Deductions, &p.NetSalary, &p.Status, &p.ProcessedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func collectPayroll(rows pgx.Rows) ([]*domain.Payroll, error) {
	defer rows.Close()
	records := make([]*domain.Payroll, 0)
	for rows.Next() {
		record, err := scanPayroll(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payroll: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func (r *PayrollRepository) List(ctx context.Context) ([]*domain.Payroll, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+payrollColumns+` FROM payroll ORDER BY month DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list payroll: %w", err)
	}
	return collectPayroll(rows)
}

func (r *PayrollRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Payroll, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+payrollColumns+` FROM payroll WHERE user_id = $1 ORDER BY month DESC, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list user payroll: %w", err)
	}
	return collectPayroll(rows)
}

func (r *PayrollRepository) FindByID(ctx context.Context, id int64) (*domain.Payroll, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+payrollColumns+` FROM payroll WHERE id = $1`, id)

	record, err := scanPayroll(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPayrollNotFound
		}
		return nil, fmt.Errorf("find payroll: %w", err)
	}
	return record, nil
}

func (r *PayrollRepository) Create(ctx context.Context, record *domain.Payroll) (*domain.Payroll, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO payroll (user_id, month, basic_salary, allowances, deductions, net_salary, status, processed_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+payrollColumns,
		record.UserID, record.Month, record.BasicSalary, record.Allowances, record.Deductions, record.NetSalary, record.Status, record.ProcessedAt,
	)

	created, err := scanPayroll(row)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.ErrInvalidReference
		}
		return nil, fmt.Errorf("insert payroll: %w", err)
	}
	return created, nil
}

func (r *PayrollRepository) Update(ctx context.Context, record *domain.Payroll) (*domain.Payroll, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE payroll
		 SET month = $2, basic_salary = $3, allowances = $4, deductions = $5, net_salary = $6, status = $7, processed_at = $8
		 WHERE id = $1
		 RETURNING `+payrollColumns,
		record.ID, record.Month, record.BasicSalary, record.Allowances, record.Deductions, record.NetSalary, record.Status, record.ProcessedAt,
	)

	updated, err := scanPayroll(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPayrollNotFound
		}
		return nil, fmt.Errorf("update payroll: %w", err)
	}
	return updated, nil
}
