package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/workwell/backoffice/internal/core/domain"
	"github.com/workwell/backoffice/internal/core/ports"
)

type departmentService struct {
	repo ports.DepartmentRepository
	log  zerolog.Logger
}

// NewDepartmentService returns a DepartmentService implementation.
func NewDepartmentService(repo ports.DepartmentRepository, log zerolog.Logger) ports.DepartmentService {
	return &departmentService{repo: repo, log: log}
}

func (s *departmentService) ListDepartments(ctx context.Context) ([]*domain.Department, error) {
	return s.repo.List(ctx)
}

func (s *departmentService) GetDepartment(ctx context.Context, id int64) (*domain.Department, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *departmentService) CreateDepartment(ctx context.Context, input ports.CreateDepartmentInput) (*domain.Department, error) {
	dept := &domain.Department{
		Name:        input.Name,
		Description: input.Description,
	}

	created, err := s.repo.Create(ctx, dept)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("name", created.Name).Int64("id", created.ID).Msg("department created")
	return created, nil
}

func (s *departmentService) UpdateDepartment(ctx context.Context, id int64, input ports.UpdateDepartmentInput) (*domain.Department, error) {
	dept, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		dept.Name = *input.Name
	}
	if input.Description != nil {
		dept.Description = input.Description
	}

	return s.repo.Update(ctx, dept)
}

func (s *departmentService) DeleteDepartment(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("id", id).Msg("department deleted")
	return nil
}
