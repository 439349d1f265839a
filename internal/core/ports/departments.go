package ports

import (
	"context"

	"github.com/workwell/backoffice/internal/core/domain"
)

// DepartmentRepository defines persistence operations for departments.
type DepartmentRepository interface {
	List(ctx context.Context) ([]*domain.Department, error)
	FindByID(ctx context.Context, id int64) (*domain.Department, error)
	Create(ctx context.Context, dept *domain.Department) (*domain.Department, error)
	Update(ctx context.Context, dept *domain.Department) (*domain.Department, error)
	Delete(ctx context.Context, id int64) error
}

type CreateDepartmentInput struct {
	Name        string
	Description *string
}

type UpdateDepartmentInput struct {
	Name        *string
	Description *string
}

type DepartmentService interface {
	ListDepartments(ctx context.Context) ([]*domain.Department, error)
	GetDepartment(ctx context.Context, id int64) (*domain.Department, error)
	CreateDepartment(ctx context.Context, input CreateDepartmentInput) (*domain.Department, error)
	UpdateDepartment(ctx context.Context, id int64, input UpdateDepartmentInput) (*domain.Department, error)
	DeleteDepartment(ctx context.Context, id int64) error
}
