package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/workwell/backoffice/internal/api/metrics"
	"github.com/workwell/backoffice/internal/core/ports"
)

// DepartmentHandler handles HTTP requests for departments.
type DepartmentHandler struct {
	service ports.DepartmentService
}

func NewDepartmentHandler(service ports.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{service: service}
}

type createDepartmentRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
}

type updateDepartmentRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// List handles GET /api/departments.
func (h *DepartmentHandler) List(c echo.Context) error {
	depts, err := h.service.ListDepartments(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, depts)
}

// Get handles GET /api/departments/:id.
func (h *DepartmentHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	dept, err := h.service.GetDepartment(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dept)
}

// Create handles POST /api/departments.
//
// @Summary      Create a department
// @Tags         departments
// @Accept       json
// @Produce      json
// @Param        body  body      createDepartmentRequest  true  "Department details"
// @Success      201   {object}  domain.Department
// @Failure      400   {object}  map[string]string
// @Router       /api/departments [post]
func (h *DepartmentHandler) Create(c echo.Context) error {
	var req createDepartmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	dept, err := h.service.CreateDepartment(c.Request().Context(), ports.CreateDepartmentInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("department", "create").Inc()
	return c.JSON(http.StatusCreated, dept)
}

// Update handles PATCH /api/departments/:id.
func (h *DepartmentHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateDepartmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	dept, err := h.service.UpdateDepartment(c.Request().Context(), id, ports.UpdateDepartmentInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("department", "update").Inc()
	return c.JSON(http.StatusOK, dept)
}

// Delete handles DELETE /api/departments/:id.
func (h *DepartmentHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.DeleteDepartment(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("department", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
