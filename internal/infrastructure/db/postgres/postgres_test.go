package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestViolationHelpers(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}
	fk := &pgconn.PgError{Code: "23503", ConstraintName: "users_department_id_fkey"}

	if !isUniqueViolation(unique) {
		t.Fatalf("23505 not detected as unique violation")
	}
	if !isForeignKeyViolation(fk) {
		t.Fatalf("23503 not detected as foreign-key violation")
	}

	// Codes must not cross over.
	if isUniqueViolation(fk) || isForeignKeyViolation(unique) {
		t.Fatalf("violation helpers matched the wrong SQLSTATE")
	}

	// Both helpers must see through wrapping, which is how repository code
	// surfaces pgx errors.
	wrapped := fmt.Errorf("insert user: %w", fk)
	if !isForeignKeyViolation(wrapped) {
		t.Fatalf("wrapped foreign-key violation not detected")
	}

	if isUniqueViolation(errors.New("connection reset")) || isForeignKeyViolation(nil) {
		t.Fatalf("non-pg errors must not match")
	}
}
