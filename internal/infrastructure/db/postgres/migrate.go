package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/workwell/backoffice/internal/core/domain"
)

// querier is the slice of pgxpool.Pool that Migrate and SeedAdmin need.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// schema holds the full DDL, one table per entity plus the sessions table.
// Statements are idempotent so Migrate can run on every startup.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS departments (
		id          BIGSERIAL PRIMARY KEY,
		name        TEXT NOT NULL,
		description TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGSERIAL PRIMARY KEY,
		username      TEXT NOT NULL UNIQUE,
		email         TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		role          TEXT NOT NULL,
		department_id BIGINT REFERENCES departments(id),
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS sessions (
		token      TEXT PRIMARY KEY,
		user_id    BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		expires_at TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS sessions_expires_at_idx ON sessions (expires_at)`,
	`CREATE TABLE IF NOT EXISTS items (
		id            BIGSERIAL PRIMARY KEY,
		name          TEXT NOT NULL,
		sku           TEXT NOT NULL UNIQUE,
		description   TEXT,
		quantity      INTEGER NOT NULL DEFAULT 0,
		price         NUMERIC(10,2) NOT NULL,
		reorder_point INTEGER,
		category      TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS tasks (
		id          BIGSERIAL PRIMARY KEY,
		title       TEXT NOT NULL,
		description TEXT,
		status      TEXT NOT NULL DEFAULT 'pending',
		priority    TEXT NOT NULL DEFAULT 'medium',
		assigned_to BIGINT REFERENCES users(id),
		due_date    TIMESTAMPTZ,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
		created_by  BIGINT NOT NULL REFERENCES users(id)
	)`,
	`CREATE TABLE IF NOT EXISTS attendance (
		id        BIGSERIAL PRIMARY KEY,
		user_id   BIGINT NOT NULL REFERENCES users(id),
		date      DATE NOT NULL,
		check_in  TIMESTAMPTZ,
		check_out TIMESTAMPTZ,
		status    TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS payroll (
		id           BIGSERIAL PRIMARY KEY,
		user_id      BIGINT NOT NULL REFERENCES users(id),
		month        DATE NOT NULL,
		basic_salary NUMERIC(10,2) NOT NULL,
		allowances   NUMERIC(10,2) NOT NULL DEFAULT 0,
		deductions   NUMERIC(10,2) NOT NULL DEFAULT 0,
		net_salary   NUMERIC(10,2) NOT NULL,
		status       TEXT NOT NULL DEFAULT 'pending',
		processed_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS invoices (
		id             BIGSERIAL PRIMARY KEY,
		invoice_number TEXT NOT NULL UNIQUE,
		client_name    TEXT NOT NULL,
		client_pan     TEXT,
		issue_date     DATE NOT NULL,
		due_date       DATE,
		subtotal       NUMERIC(10,2) NOT NULL,
		tax_amount     NUMERIC(10,2) NOT NULL,
		total_amount   NUMERIC(10,2) NOT NULL,
		status         TEXT NOT NULL DEFAULT 'draft',
		created_by     BIGINT NOT NULL REFERENCES users(id)
	)`,
	`CREATE TABLE IF NOT EXISTS invoice_items (
		id          BIGSERIAL PRIMARY KEY,
		invoice_id  BIGINT NOT NULL REFERENCES invoices(id) ON DELETE CASCADE,
		description TEXT NOT NULL,
		quantity    INTEGER NOT NULL,
		unit_price  NUMERIC(10,2) NOT NULL,
		amount      NUMERIC(10,2) NOT NULL
	)`,
}

// Migrate creates any missing tables. Safe to run on every startup.
func Migrate(ctx context.Context, db querier) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// SeedAdmin creates the bootstrap super_admin account when the users table is
// empty. Credentials come from configuration; nothing happens once any user
// exists, so a wiped password cannot overwrite a live system.
func SeedAdmin(ctx context.Context, db querier, username, password, email string, log zerolog.Logger) error {
	if username == "" || password == "" {
		return nil
	}

	var count int64
	if err := db.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&count); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	_, err = db.Exec(ctx,
		`INSERT INTO users (username, email, password_hash, role) VALUES ($1, $2, $3, $4)`,
		username, email, string(hash), domain.RoleSuperAdmin,
	)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	log.Info().Str("username", username).Msg("seeded bootstrap super_admin")
	return nil
}
