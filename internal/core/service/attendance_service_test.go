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

type stubAttendanceRepo struct {
	records map[int64]*domain.Attendance
	nextID  int64
}

func newStubAttendanceRepo() *stubAttendanceRepo {
	return &stubAttendanceRepo{records: make(map[int64]*domain.Attendance)}
}

func cloneAttendance(a *domain.Attendance) *domain.Attendance {
	clone := *a
	return &clone
}

func (r *stubAttendanceRepo) List(_ context.Context) ([]*domain.Attendance, error) {
	out := make([]*domain.Attendance, 0, len(r.records))
	for _, a := range r.records {
		out = append(out, cloneAttendance(a))
	}
	return out, nil
}

func (r *stubAttendanceRepo) ListByUser(_ context.Context, userID int64) ([]*domain.Attendance, error) {
	var out []*domain.Attendance
	for _, a := range r.records {
		if a.UserID == userID {
			out = append(out, cloneAttendance(a))
		}
	}
	return out, nil
}

func (r *stubAttendanceRepo) FindByID(_ context.Context, id int64) (*domain.Attendance, error) {
	if a, ok := r.records[id]; ok {
		return cloneAttendance(a), nil
	}
	return nil, domain.ErrAttendanceNotFound
}

func (r *stubAttendanceRepo) Create(_ context.Context, record *domain.Attendance) (*domain.Attendance, error) {
	copy := cloneAttendance(record)
	r.nextID++
	copy.ID = r.nextID
	r.records[copy.ID] = cloneAttendance(copy)
	return cloneAttendance(copy), nil
}

func (r *stubAttendanceRepo) Update(_ context.Context, record *domain.Attendance) (*domain.Attendance, error) {
	if _, ok := r.records[record.ID]; !ok {
		return nil, domain.ErrAttendanceNotFound
	}
	r.records[record.ID] = cloneAttendance(record)
	return cloneAttendance(record), nil
}

func seedAttendance(t *testing.T, svc ports.AttendanceService) *domain.Attendance {
	t.Helper()
	in := time.Date(2024, time.June, 3, 9, 0, 0, 0, time.UTC)
	record, err := svc.CreateAttendance(context.Background(), ports.CreateAttendanceInput{
		UserID:  7,
		Date:    time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC),
		CheckIn: &in,
		Status:  domain.AttendancePresent,
	})
	if err != nil {
		t.Fatalf("seed attendance: %v", err)
	}
	return record
}

func TestAttendanceService_Create(t *testing.T) {
	svc := NewAttendanceService(newStubAttendanceRepo(), zerolog.Nop())

	record := seedAttendance(t, svc)
	if record.Status != domain.AttendancePresent {
		t.Fatalf("expected present, got %s", record.Status)
	}
	if record.CheckIn == nil || record.CheckOut != nil {
		t.Fatalf("unexpected check times: %+v", record)
	}
}

func TestAttendanceService_RejectsUnknownStatus(t *testing.T) {
	svc := NewAttendanceService(newStubAttendanceRepo(), zerolog.Nop())

	_, err := svc.CreateAttendance(context.Background(), ports.CreateAttendanceInput{
		UserID: 7,
		Date:   time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC),
		Status: "on_leave",
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	record := seedAttendance(t, svc)
	bad := domain.AttendanceStatus("on_leave")
	if _, err := svc.UpdateAttendance(context.Background(), record.ID, ports.UpdateAttendanceInput{Status: &bad}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAttendanceService_Update_CheckOut(t *testing.T) {
	svc := NewAttendanceService(newStubAttendanceRepo(), zerolog.Nop())
	record := seedAttendance(t, svc)

	out := time.Date(2024, time.June, 3, 17, 30, 0, 0, time.UTC)
	updated, err := svc.UpdateAttendance(context.Background(), record.ID, ports.UpdateAttendanceInput{CheckOut: &out})
	if err != nil {
		t.Fatalf("UpdateAttendance failed: %v", err)
	}
	if updated.CheckOut == nil || !updated.CheckOut.Equal(out) {
		t.Fatalf("check-out not applied: %+v", updated.CheckOut)
	}
	if updated.Status != domain.AttendancePresent {
		t.Fatalf("status changed unexpectedly: %s", updated.Status)
	}
}

func TestAttendanceService_ListByUser(t *testing.T) {
	repo := newStubAttendanceRepo()
	svc := NewAttendanceService(repo, zerolog.Nop())

	seedAttendance(t, svc)
	if _, err := svc.CreateAttendance(context.Background(), ports.CreateAttendanceInput{
		UserID: 9,
		Date:   time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC),
		Status: domain.AttendanceAbsent,
	}); err != nil {
		t.Fatalf("create attendance: %v", err)
	}

	records, err := svc.ListUserAttendance(context.Background(), 7)
	if err != nil {
		t.Fatalf("ListUserAttendance failed: %v", err)
	}
	if len(records) != 1 || records[0].UserID != 7 {
		t.Fatalf("unexpected records: %+v", records)
	}
}
