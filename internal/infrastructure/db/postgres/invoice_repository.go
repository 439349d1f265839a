package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/workwell/backoffice/internal/core/domain"
)

// InvoiceRepository persists invoices and their line items. The header and
// lines are written in one transaction so a failed line insert leaves nothing
// behind.
type InvoiceRepository struct {
	pool *pgxpool.Pool
}

func NewInvoiceRepository(pool *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{pool: pool}
}

const invoiceColumns = `id, invoice_number, client_name, client_pan, issue_date, due_date,
	subtotal::text, tax_amount::text, total_amount::text, status, created_by`

func scanInvoice(row pgx.Row) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := row.Scan(&inv.ID, &inv.InvoiceNumber, &inv.ClientName, &inv.ClientPAN, &inv.IssueDate,
		&inv.DueDate, &inv.Subtotal, &inv.TaxAmount, &inv.TotalAmount, &inv.Status, &inv.CreatedBy)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *InvoiceRepository) List(ctx context.Context) ([]*domain.Invoice, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+invoiceColumns+` FROM invoices ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	invoices := make([]*domain.Invoice, 0)
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}

func (r *InvoiceRepository) FindByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id)

	invoice, err := scanInvoice(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("find invoice: %w", err)
	}

	items, err := r.listItems(ctx, id)
	if err != nil {
		return nil, err
	}
	invoice.Items = items
	return invoice, nil
}

func (r *InvoiceRepository) listItems(ctx context.Context, invoiceID int64) ([]domain.InvoiceItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, invoice_id, description, quantity, unit_price::text, amount::text
		 FROM invoice_items WHERE invoice_id = $1 ORDER BY id`, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice items: %w", err)
	}
	defer rows.Close()

	items := make([]domain.InvoiceItem, 0)
	for rows.Next() {
		var it domain.InvoiceItem
		if err := rows.Scan(&it.ID, &it.InvoiceID, &it.Description, &it.Quantity, &it.UnitPrice, &it.Amount); err != nil {
			return nil, fmt.Errorf("scan invoice item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *InvoiceRepository) Create(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin invoice tx: %w", err)
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx,
		`INSERT INTO invoices (invoice_number, client_name, client_pan, issue_date, due_date, subtotal, tax_amount, total_amount, status, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING `+invoiceColumns,
		invoice.InvoiceNumber, invoice.ClientName, invoice.ClientPAN, invoice.IssueDate, invoice.DueDate,
		invoice.Subtotal, invoice.TaxAmount, invoice.TotalAmount, invoice.Status, invoice.CreatedBy,
	)

	created, err := scanInvoice(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicateInvoice
		}
		if isForeignKeyViolation(err) {
			return nil, domain.ErrInvalidReference
		}
		return nil, fmt.Errorf("insert invoice: %w", err)
	}

	for _, line := range invoice.Items {
		var item domain.InvoiceItem
		err := tx.QueryRow(ctx,
			`INSERT INTO invoice_items (invoice_id, description, quantity, unit_price, amount)
			 VALUES ($1, $2, $3, $4, $5)
			 RETURNING id, invoice_id, description, quantity, unit_price::text, amount::text`,
			created.ID, line.Description, line.Quantity, line.UnitPrice, line.Amount,
		).Scan(&item.ID, &item.InvoiceID, &item.Description, &item.Quantity, &item.UnitPrice, &item.Amount)
		if err != nil {
			return nil, fmt.Errorf("insert invoice item: %w", err)
		}
		created.Items = append(created.Items, item)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit invoice tx: %w", err)
	}
	return created, nil
}

func (r *InvoiceRepository) Update(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE invoices
		 SET client_name = $2, client_pan = $3, issue_date = $4, due_date = $5, subtotal = $6, tax_amount = $7, total_amount = $8, status = $9
		 WHERE id = $1
		 RETURNING `+invoiceColumns,
		invoice.ID, invoice.ClientName, invoice.ClientPAN, invoice.IssueDate, invoice.DueDate,
		invoice.Subtotal, invoice.TaxAmount, invoice.TotalAmount, invoice.Status,
	)

	updated, err := scanInvoice(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("update invoice: %w", err)
	}

	items, err := r.listItems(ctx, updated.ID)
	if err != nil {
		return nil, err
	}
	updated.Items = items
	return updated, nil
}

// Delete removes the invoice; the invoice_items FK cascades.
func (r *InvoiceRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInvoiceNotFound
	}
	return nil
}
