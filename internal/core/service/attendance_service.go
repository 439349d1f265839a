package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/workwell/backoffice/internal/core/domain"
	"github.com/workwell/backoffice/internal/core/ports"
)

type attendanceService struct {
	repo ports.AttendanceRepository
	log  zerolog.Logger
}

// NewAttendanceService returns an AttendanceService implementation.
func NewAttendanceService(repo ports.AttendanceRepository, log zerolog.Logger) ports.AttendanceService {
	return &attendanceService{repo: repo, log: log}
}

func (s *attendanceService) ListAttendance(ctx context.Context) ([]*domain.Attendance, error) {
	return s.repo.List(ctx)
}

func (s *attendanceService) ListUserAttendance(ctx context.Context, userID int64) ([]*domain.Attendance, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *attendanceService) CreateAttendance(ctx context.Context, input ports.CreateAttendanceInput) (*domain.Attendance, error) {
	if !domain.ValidAttendanceStatus(input.Status) {
		return nil, fmt.Errorf("%w: status %q", domain.ErrInvalidInput, input.Status)
	}

	record := &domain.Attendance{
		UserID:   input.UserID,
		Date:     input.Date,
		CheckIn:  input.CheckIn,
		CheckOut: input.CheckOut,
		Status:   input.Status,
	}

	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("user_id", created.UserID).Str("status", string(created.Status)).Msg("attendance recorded")
	return created, nil
}

func (s *attendanceService) UpdateAttendance(ctx context.Context, id int64, input ports.UpdateAttendanceInput) (*domain.Attendance, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Date != nil {
		record.Date = *input.Date
	}
	if input.CheckIn != nil {
		record.CheckIn = input.CheckIn
	}
	if input.CheckOut != nil {
		record.CheckOut = input.CheckOut
	}
	if input.Status != nil {
		if !domain.ValidAttendanceStatus(*input.Status) {
			return nil, fmt.Errorf("%w: status %q", domain.ErrInvalidInput, *input.Status)
		}
		record.Status = *input.Status
	}

	return s.repo.Update(ctx, record)
}
