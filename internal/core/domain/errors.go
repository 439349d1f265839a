package domain

import "errors"

// Auth errors. ErrInvalidCredentials deliberately covers both "no such user"
// and "wrong password" so login failures never reveal which usernames exist.
var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrSessionNotFound    = errors.New("session not found")
	ErrTooManyAttempts    = errors.New("too many failed login attempts")
	ErrForbidden          = errors.New("access forbidden")
)

// Entity errors. ErrInvalidInput covers values outside a closed set that
// slipped past request validation; ErrInvalidReference covers foreign keys
// pointing at rows that do not exist.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidReference   = errors.New("referenced record does not exist")
	ErrItemNotFound       = errors.New("item not found")
	ErrDuplicateSKU       = errors.New("item sku already exists")
	ErrTaskNotFound       = errors.New("task not found")
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrPayrollNotFound    = errors.New("payroll record not found")
	ErrDepartmentNotFound = errors.New("department not found")
	ErrInvoiceNotFound    = errors.New("invoice not found")
	ErrDuplicateInvoice   = errors.New("invoice number already exists")
)
