package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/workwell/backoffice/internal/core/domain"
	"github.com/workwell/backoffice/internal/core/ports"
)

type inventoryService struct {
	repo ports.ItemRepository
	log  zerolog.Logger
}

// NewInventoryService returns an InventoryService implementation.
func NewInventoryService(repo ports.ItemRepository, log zerolog.Logger) ports.InventoryService {
	return &inventoryService{repo: repo, log: log}
}

func (s *inventoryService) ListItems(ctx context.Context) ([]*domain.Item, error) {
	return s.repo.List(ctx)
}

func (s *inventoryService) GetItem(ctx context.Context, id int64) (*domain.Item, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *inventoryService) CreateItem(ctx context.Context, input ports.CreateItemInput) (*domain.Item, error) {
	item := &domain.Item{
		Name:         input.Name,
		SKU:          input.SKU,
		Description:  input.Description,
		Quantity:     input.Quantity,
		Price:        input.Price,
		ReorderPoint: input.ReorderPoint,
		Category:     input.Category,
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("sku", created.SKU).Int64("id", created.ID).Msg("item created")
	if created.BelowReorderPoint() {
		s.log.Warn().Str("sku", created.SKU).Int32("quantity", created.Quantity).Msg("item created at or below reorder point")
	}
	return created, nil
}

// UpdateItem applies a partial update: only non-nil input fields change.
func (s *inventoryService) UpdateItem(ctx context.Context, id int64, input ports.UpdateItemInput) (*domain.Item, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.SKU != nil {
		item.SKU = *input.SKU
	}
	if input.Description != nil {
		item.Description = input.Description
	}
	if input.Quantity != nil {
		item.Quantity = *input.Quantity
	}
	if input.Price != nil {
		item.Price = *input.Price
	}
	if input.ReorderPoint != nil {
		item.ReorderPoint = input.ReorderPoint
	}
	if input.Category != nil {
		item.Category = input.Category
	}

	updated, err := s.repo.Update(ctx, item)
	if err != nil {
		return nil, err
	}

	if updated.BelowReorderPoint() {
		s.log.Warn().Str("sku", updated.SKU).Int32("quantity", updated.Quantity).Msg("item at or below reorder point")
	}
	return updated, nil
}

func (s *inventoryService) DeleteItem(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("id", id).Msg("item deleted")
	return nil
}
