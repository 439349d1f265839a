package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/workwell/backoffice/internal/core/domain"
	"github.com/workwell/backoffice/internal/core/ports"
)

type taskService struct {
	repo ports.TaskRepository
	log  zerolog.Logger
}

// NewTaskService returns a TaskService implementation.
func NewTaskService(repo ports.TaskRepository, log zerolog.Logger) ports.TaskService {
	return &taskService{repo: repo, log: log}
}

func (s *taskService) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	return s.repo.List(ctx)
}

func (s *taskService) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *taskService) CreateTask(ctx context.Context, input ports.CreateTaskInput) (*domain.Task, error) {
	status := input.Status
	if status == "" {
		status = domain.TaskPending
	}
	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if !domain.ValidTaskStatus(status) {
		return nil, fmt.Errorf("%w: status %q", domain.ErrInvalidInput, status)
	}
	if !domain.ValidTaskPriority(priority) {
		return nil, fmt.Errorf("%w: priority %q", domain.ErrInvalidInput, priority)
	}

	task := &domain.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		Priority:    priority,
		AssignedTo:  input.AssignedTo,
		DueDate:     input.DueDate,
		CreatedAt:   time.Now().UTC(),
		CreatedBy:   input.CreatedBy,
	}

	created, err := s.repo.Create(ctx, task)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("id", created.ID).Str("title", created.Title).Msg("task created")
	return created, nil
}

func (s *taskService) UpdateTask(ctx context.Context, id int64, input ports.UpdateTaskInput) (*domain.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = input.Description
	}
	if input.Status != nil {
		if !domain.ValidTaskStatus(*input.Status) {
			return nil, fmt.Errorf("%w: status %q", domain.ErrInvalidInput, *input.Status)
		}
		task.Status = *input.Status
	}
	if input.Priority != nil {
		if !domain.ValidTaskPriority(*input.Priority) {
			return nil, fmt.Errorf("%w: priority %q", domain.ErrInvalidInput, *input.Priority)
		}
		task.Priority = *input.Priority
	}
	if input.AssignedTo != nil {
		task.AssignedTo = input.AssignedTo
	}
	if input.DueDate != nil {
		task.DueDate = input.DueDate
	}

	return s.repo.Update(ctx, task)
}

func (s *taskService) DeleteTask(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("id", id).Msg("task deleted")
	return nil
}
