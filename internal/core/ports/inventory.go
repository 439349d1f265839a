package ports

import (
	"context"

	"github.com/workwell/backoffice/internal/core/domain"
)

// ItemRepository defines persistence operations for inventory items.
type ItemRepository interface {
	List(ctx context.Context) ([]*domain.Item, error)
	FindByID(ctx context.Context, id int64) (*domain.Item, error)
	Create(ctx context.Context, item *domain.Item) (*domain.Item, error)
	Update(ctx context.Context, item *domain.Item) (*domain.Item, error)
	Delete(ctx context.Context, id int64) error
}

// CreateItemInput carries the fields accepted when creating an item.
type CreateItemInput struct {
	Name         string
	SKU          string
	Description  *string
	Quantity     int32
	Price        string
	ReorderPoint *int32
	Category     *string
}

// UpdateItemInput is a partial update: nil fields are left unchanged.
type UpdateItemInput struct {
	Name         *string
	SKU          *string
	Description  *string
	Quantity     *int32
	Price        *string
	ReorderPoint *int32
	Category     *string
}

type InventoryService interface {
	ListItems(ctx context.Context) ([]*domain.Item, error)
	GetItem(ctx context.Context, id int64) (*domain.Item, error)
	CreateItem(ctx context.Context, input CreateItemInput) (*domain.Item, error)
	UpdateItem(ctx context.Context, id int64, input UpdateItemInput) (*domain.Item, error)
	DeleteItem(ctx context.Context, id int64) error
}
