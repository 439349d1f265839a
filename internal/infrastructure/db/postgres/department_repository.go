package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/workwell/backoffice/internal/core/domain"
)

// DepartmentRepository persists departments.
type DepartmentRepository struct {
	pool *pgxpool.Pool
}

func NewDepartmentRepository(pool *pgxpool.Pool) *DepartmentRepository {
	return &DepartmentRepository{pool: pool}
}

func scanDepartment(row pgx.Row) (*domain.Department, error) {
	var d domain.Department
	if err := row.Scan(&d.ID, &d.Name, &d.Description); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DepartmentRepository) List(ctx context.Context) ([]*domain.Department, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, description FROM departments ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer rows.Close()

	depts := make([]*domain.Department, 0)
	for rows.Next() {
		dept, err := scanDepartment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan department: %w", err)
		}
		depts = append(depts, dept)
	}
	return depts, rows.Err()
}

func (r *DepartmentRepository) FindByID(ctx context.Context, id int64) (*domain.Department, error) {
	row := r.pool.QueryRow(ctx, `SELECT id, name, description FROM departments WHERE id = $1`, id)

	dept, err := scanDepartment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("find department: %w", err)
	}
	return dept, nil
}

func (r *DepartmentRepository) Create(ctx context.Context, dept *domain.Department) (*domain.Department, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO departments (name, description) VALUES ($1, $2) RETURNING id, name, description`,
		dept.Name, dept.Description,
	)

	created, err := scanDepartment(row)
	if err != nil {
		return nil, fmt.Errorf("insert department: %w", err)
	}
	return created, nil
}

func (r *DepartmentRepository) Update(ctx context.Context, dept *domain.Department) (*domain.Department, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE departments SET name = $2, description = $3 WHERE id = $1 RETURNING id, name, description`,
		dept.ID, dept.Name, dept.Description,
	)

	updated, err := scanDepartment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("update department: %w", err)
	}
	return updated, nil
}

func (r *DepartmentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDepartmentNotFound
	}
	return nil
}
