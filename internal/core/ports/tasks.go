package ports

import (
	"context"
	"time"

	"github.com/workwell/backoffice/internal/core/domain"
)

// TaskRepository defines persistence operations for tasks.
type TaskRepository interface {
	List(ctx context.Context) ([]*domain.Task, error)
	FindByID(ctx context.Context, id int64) (*domain.Task, error)
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) (*domain.Task, error)
	Delete(ctx context.Context, id int64) error
}

// CreateTaskInput carries the fields accepted when creating a task.
// CreatedBy is stamped by the handler from the authenticated user, never
// taken from the request body.
type CreateTaskInput struct {
	Title       string
	Description *string
	Status      domain.TaskStatus
	Priority    domain.TaskPriority
	AssignedTo  *int64
	DueDate     *time.Time
	CreatedBy   int64
}

// UpdateTaskInput is a partial update: nil fields are left unchanged.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *domain.TaskStatus
	Priority    *domain.TaskPriority
	AssignedTo  *int64
	DueDate     *time.Time
}

type TaskService interface {
	ListTasks(ctx context.Context) ([]*domain.Task, error)
	GetTask(ctx context.Context, id int64) (*domain.Task, error)
	CreateTask(ctx context.Context, input CreateTaskInput) (*domain.Task, error)
	UpdateTask(ctx context.Context, id int64, input UpdateTaskInput) (*domain.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}
