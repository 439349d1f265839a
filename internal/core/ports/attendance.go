package ports

import (
	"context"
	"time"

	"github.com/workwell/backoffice/internal/core/domain"
)

// AttendanceRepository defines persistence operations for attendance records.
// There is no delete: attendance history is append-and-correct only.
type AttendanceRepository interface {
	List(ctx context.Context) ([]*domain.Attendance, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Attendance, error)
	FindByID(ctx context.Context, id int64) (*domain.Attendance, error)
	Create(ctx context.Context, record *domain.Attendance) (*domain.Attendance, error)
	Update(ctx context.Context, record *domain.Attendance) (*domain.Attendance, error)
}

// CreateAttendanceInput carries the fields accepted when recording attendance.
type CreateAttendanceInput struct {
	UserID   int64
	Date     time.Time
	CheckIn  *time.Time
	CheckOut *time.Time
	Status   domain.AttendanceStatus
}

// UpdateAttendanceInput is a partial update: nil fields are left unchanged.
type UpdateAttendanceInput struct {
	Date     *time.Time
	CheckIn  *time.Time
	CheckOut *time.Time
	Status   *domain.AttendanceStatus
}

type AttendanceService interface {
	ListAttendance(ctx context.Context) ([]*domain.Attendance, error)
	ListUserAttendance(ctx context.Context, userID int64) ([]*domain.Attendance, error)
	CreateAttendance(ctx context.Context, input CreateAttendanceInput) (*domain.Attendance, error)
	UpdateAttendance(ctx context.Context, id int64, input UpdateAttendanceInput) (*domain.Attendance, error)
}
