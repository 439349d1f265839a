package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/workwell/backoffice/internal/core/domain"
)

// AttendanceRepository persists attendance records. Rows are never deleted.
type AttendanceRepository struct {
	pool *pgxpool.Pool
}

func NewAttendanceRepository(pool *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{pool: pool}
}

const attendanceColumns = `id, user_id, date, check_in, check_out, status`

func scanAttendance(row pgx.Row) (*domain.Attendance, error) {
	var a domain.Attendance
	err := row.Scan(&a.ID, &a.UserID, &a.Date, &a.CheckIn, &a.CheckOut, &a.Status)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func collectAttendance(rows pgx.Rows) ([]*domain.Attendance, error) {
	defer rows.Close()
	records := make([]*domain.Attendance, 0)
	for rows.Next() {
		record, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("scan attendance: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func (r *AttendanceRepository) List(ctx context.Context) ([]*domain.Attendance, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+attendanceColumns+` FROM attendance ORDER BY date DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	return collectAttendance(rows)
}

func (r *AttendanceRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Attendance, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+attendanceColumns+` FROM attendance WHERE user_id = $1 ORDER BY date DESC, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list user attendance: %w", err)
	}
	return collectAttendance(rows)
}

func (r *AttendanceRepository) FindByID(ctx context.Context, id int64) (*domain.Attendance, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+attendanceColumns+` FROM attendance WHERE id = $1`, id)

	record, err := scanAttendance(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("find attendance: %w", err)
	}
	return record, nil
}

func (r *AttendanceRepository) Create(ctx context.Context, record *domain.Attendance) (*domain.Attendance, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO attendance (user_id, date, check_in, check_out, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+attendanceColumns,
		record.UserID, record.Date, record.CheckIn, record.CheckOut, record.Status,
	)

	created, err := scanAttendance(row)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.ErrInvalidReference
		}
		return nil, fmt.Errorf("insert attendance: %w", err)
	}
	return created, nil
}

func (r *AttendanceRepository) Update(ctx context.Context, record *domain.Attendance) (*domain.Attendance, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE attendance
		 SET date = $2, check_in = $3, check_out = $4, status = $5
		 WHERE id = $1
		 RETURNING `+attendanceColumns,
		record.ID, record.Date, record.CheckIn, record.CheckOut, record.Status,
	)

	updated, err := scanAttendance(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("update attendance: %w", err)
	}
	return updated, nil
}
