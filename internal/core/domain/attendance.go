package domain

import "time"

// AttendanceStatus classifies a single day of attendance.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceHalfDay AttendanceStatus = "half_day"
)

// ValidAttendanceStatus reports whether s belongs to the closed status set.
func ValidAttendanceStatus(s AttendanceStatus) bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceHalfDay:
		return true
	}
	return false
}

// Attendance is one user's record for one calendar day. Date carries the day
// only; CheckIn/CheckOut are full timestamps when present.
type Attendance struct {
	ID       int64            `json:"id"`
	UserID   int64            `json:"user_id"`
	Date     time.Time        `json:"date"`
	CheckIn  *time.Time       `json:"check_in,omitempty"`
	CheckOut *time.Time       `json:"check_out,omitempty"`
	Status   AttendanceStatus `json:"status"`
}
