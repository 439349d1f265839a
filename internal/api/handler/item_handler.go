package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/workwell/backoffice/internal/api/metrics"
	"github.com/workwell/backoffice/internal/core/ports"
)

// ItemHandler handles HTTP requests for inventory items.
type ItemHandler struct {
	service ports.InventoryService
}

func NewItemHandler(service ports.InventoryService) *ItemHandler {
	return &ItemHandler{service: service}
}

type createItemRequest struct {
	Name         string  `json:"name" validate:"required"`
	SKU          string  `json:"sku" validate:"required"`
	Description  *string `json:"description"`
	Quantity     int32   `json:"quantity" validate:"gte=0"`
	Price        string  `json:"price" validate:"required"`
	ReorderPoint *int32  `json:"reorder_point"`
	Category     *string `json:"category"`
}

type updateItemRequest struct {
	Name         *string `json:"name"`
	SKU          *string `json:"sku"`
	Description  *string `json:"description"`
	Quantity     *int32  `json:"quantity"`
	Price        *string `json:"price"`
	ReorderPoint *int32  `json:"reorder_point"`
	Category     *string `json:"category"`
}

// List handles GET /api/items.
//
// @Summary      List inventory items
// @Tags         items
// @Produce      json
// @Success      200  {array}   domain.Item
// @Failure      401  "no valid session"
// @Failure      403  {object}  map[string]string
// @Router       /api/items [get]
func (h *ItemHandler) List(c echo.Context) error {
	items, err := h.service.ListItems(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /api/items/:id.
//
// @Summary      Get an inventory item
// @Tags         items
// @Produce      json
// @Param        id   path      int  true  "Item id"
// @Success      200  {object}  domain.Item
// @Failure      404  {object}  map[string]string
// @Router       /api/items/{id} [get]
func (h *ItemHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	item, err := h.service.GetItem(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Create handles POST /api/items.
//
// @Summary      Create an inventory item
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        body  body      createItemRequest  true  "Item details"
// @Success      201   {object}  domain.Item
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/items [post]
func (h *ItemHandler) Create(c echo.Context) error {
	var req createItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	item, err := h.service.CreateItem(c.Request().Context(), ports.CreateItemInput{
		Name:         req.Name,
		SKU:          req.SKU,
		Description:  req.Description,
		Quantity:     req.Quantity,
		Price:        req.Price,
		ReorderPoint: req.ReorderPoint,
		Category:     req.Category,
	})
	if err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("item", "create").Inc()
	return c.JSON(http.StatusCreated, item)
}

// Update handles PATCH /api/items/:id. Only fields present in the body change.
//
// @Summary      Update an inventory item
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "Item id"
// @Param        body  body      updateItemRequest  true  "Fields to change"
// @Success      200   {object}  domain.Item
// @Failure      404   {object}  map[string]string
// @Router       /api/items/{id} [patch]
func (h *ItemHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	item, err := h.service.UpdateItem(c.Request().Context(), id, ports.UpdateItemInput{
		Name:         req.Name,
		SKU:          req.SKU,
		Description:  req.Description,
		Quantity:     req.Quantity,
		Price:        req.Price,
		ReorderPoint: req.ReorderPoint,
		Category:     req.Category,
	})
	if err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("item", "update").Inc()
	return c.JSON(http.StatusOK, item)
}

// Delete handles DELETE /api/items/:id.
//
// @Summary      Delete an inventory item
// @Tags         items
// @Param        id  path  int  true  "Item id"
// @Success      204  "deleted"
// @Failure      404  {object}  map[string]string
// @Router       /api/items/{id} [delete]
func (h *ItemHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.DeleteItem(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("item", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
