package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/workwell/backoffice/internal/api/metrics"
	"github.com/workwell/backoffice/internal/core/domain"
	"github.com/workwell/backoffice/internal/core/ports"
)

// PayrollHandler handles HTTP requests for payroll records.
type PayrollHandler struct {
	service ports.PayrollService
}

func NewPayrollHandler(service ports.PayrollService) *PayrollHandler {
	return &PayrollHandler{service: service}
}

type createPayrollRequest struct {
	UserID      int64  `json:"user_id" validate:"required,gt=0"`
	Month       string `json:"month" validate:"required"`
	BasicSalary string `json:"basic_salary" validate:"required"`
	Allowances  string `json:"allowances"`
	Deductions  string `json:"deductions"`
	NetSalary   string `json:"net_salary" validate:"required"`
	Status      string `json:"status" validate:"omitempty,oneof=pending processed paid"`
}

type updatePayrollRequest struct {
	Month       *string `json:"month"`
	BasicSalary *string `json:"basic_salary"`
	Allowances  *string `json:"allowances"`
	Deductions  *string `json:"deductions"`
	NetSalary   *string `json:"net_salary"`
	Status      *string `json:"status" validate:"omitempty,oneof=pending processed paid"`
}

// List handles GET /api/payroll.
func (h *PayrollHandler) List(c echo.Context) error {
	records, err := h.service.ListPayroll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, records)
}

// ListByUser handles GET /api/payroll/user/:userId.
func (h *PayrollHandler) ListByUser(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	records, err := h.service.ListUserPayroll(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, records)
}

// Create handles POST /api/payroll.
//
// @Summary      Create a payroll record
// @Tags         payroll
// @Accept       json
// @Produce      json
// @Param        body  body      createPayrollRequest  true  "Payroll details"
// @Success      201   {object}  domain.Payroll
// @Failure      400   {object}  map[string]string
// @Router       /api/payroll [post]
func (h *PayrollHandler) Create(c echo.Context) error {
	var req createPayrollRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	month, err := parseDate("month", req.Month)
	if err != nil {
		return err
	}

	record, err := h.service.CreatePayroll(c.Request().Context(), ports.CreatePayrollInput{
		UserID:      req.UserID,
		Month:       month,
		BasicSalary: req.BasicSalary,
		Allowances:  req.Allowances,
		Deductions:  req.Deductions,
		NetSalary:   req.NetSalary,
		Status:      domain.PayrollStatus(req.Status),
	})
	if err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("payroll", "create").Inc()
	return c.JSON(http.StatusCreated, record)
}

// Update handles PATCH /api/payroll/:id.
func (h *PayrollHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updatePayrollRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	month, err := parseOptionalDate("month", req.Month)
	if err != nil {
		return err
	}

	input := ports.UpdatePayrollInput{
		Month:       month,
		BasicSalary: req.BasicSalary,
		Allowances:  req.Allowances,
		Deductions:  req.Deductions,
		NetSalary:   req.NetSalary,
	}
	if req.Status != nil {
		status := domain.PayrollStatus(*req.Status)
		input.Status = &status
	}

	record, err := h.service.UpdatePayroll(c.Request().Context(), id, input)
	if err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("payroll", "update").Inc()
	return c.JSON(http.StatusOK, record)
}
