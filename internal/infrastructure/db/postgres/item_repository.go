package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/workwell/backoffice/internal/core/domain"
)

// ItemRepository persists inventory items. Numeric columns are selected as
// text so prices survive the round trip without float conversion.
type ItemRepository struct {
	pool *pgxpool.Pool
}

func NewItemRepository(pool *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{pool: pool}
}

const itemColumns = `id, name, sku, description, quantity, price::text, reorder_point, category`

func scanItem(row pgx.Row) (*domain.Item, error) {
	var it domain.Item
	err := row.Scan(&it.ID, &it.Name, &it.SKU, &it.Description, &it.Quantity, &it.Price, &it.ReorderPoint, &it.Category)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *ItemRepository) List(ctx context.Context) ([]*domain.Item, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+itemColumns+` FROM items ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	items := make([]*domain.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *ItemRepository) FindByID(ctx context.Context, id int64) (*domain.Item, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+itemColumns+` FROM items WHERE id = $1`, id)

	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("find item: %w", err)
	}
	return item, nil
}

func (r *ItemRepository) Create(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO items (name, sku, description, quantity, price, reorder_point, category)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+itemColumns,
		item.Name, item.SKU, item.Description, item.Quantity, item.Price, item.ReorderPoint, item.Category,
	)

	created, err := scanItem(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicateSKU
		}
		return nil, fmt.Errorf("insert item: %w", err)
	}
	return created, nil
}

func (r *ItemRepository) Update(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE items
		 SET name = $2, sku = $3, description = $4, quantity = $5, price = $6, reorder_point = $7, category = $8
		 WHERE id = $1
		 RETURNING `+itemColumns,
		item.ID, item.Name, item.SKU, item.Description, item.Quantity, item.Price, item.ReorderPoint, item.Category,
	)

	updated, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicateSKU
		}
		return nil, fmt.Errorf("update item: %w", err)
	}
	return updated, nil
}

func (r *ItemRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}
