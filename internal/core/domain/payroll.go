package domain

import "time"

// PayrollStatus represents the processing state of a payroll record.
type PayrollStatus string

const (
	PayrollPending   PayrollStatus = "pending"
	PayrollProcessed PayrollStatus = "processed"
	PayrollPaid      PayrollStatus = "paid"
)

// ValidPayrollStatus reports whether s belongs to the closed status set.
func ValidPayrollStatus(s PayrollStatus) bool {
	switch s {
	case PayrollPending, PayrollProcessed, PayrollPaid:
		return true
	}
	return false
}

// Payroll is one user's salary record for one month. Monetary fields are
// decimal strings, matching the numeric columns underneath.
type Payroll struct {
	ID          int64         `json:"id"`
	UserID      int64         `json:"user_id"`
	Month       time.Time     `json:"month"`
	BasicSalary string        `json:"basic_salary"`
	Allowances  string        `json:"allowances"`
	Deductions  string        `json:"deductions"`
	NetSalary   string        `json:"net_salary"`
	Status      PayrollStatus `json:"status"`
	ProcessedAt *time.Time    `json:"processed_at,omitempty"`
}
