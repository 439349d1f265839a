package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/workwell/backoffice/internal/api/metrics"
	"github.com/workwell/backoffice/internal/core/domain"
	"github.com/workwell/backoffice/internal/core/ports"
)

// InvoiceHandler handles HTTP requests for invoices. CreatedBy is stamped
// from the session user.
type InvoiceHandler struct {
	service ports.InvoiceService
}

func NewInvoiceHandler(service ports.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{service: service}
}

type invoiceLineRequest struct {
	Description string `json:"description" validate:"required"`
	Quantity    int32  `json:"quantity" validate:"required,gt=0"`
	UnitPrice   string `json:"unit_price" validate:"required"`
	Amount      string `json:"amount" validate:"required"`
}

type createInvoiceRequest struct {
	InvoiceNumber string               `json:"invoice_number" validate:"required"`
	ClientName    string               `json:"client_name" validate:"required"`
	ClientPAN     *string              `json:"client_pan"`
	IssueDate     string               `json:"issue_date" validate:"required"`
	DueDate       *string              `json:"due_date"`
	Subtotal      string               `json:"subtotal" validate:"required"`
	TaxAmount     string               `json:"tax_amount" validate:"required"`
	TotalAmount   string               `json:"total_amount" validate:"required"`
	Status        string               `json:"status" validate:"omitempty,oneof=draft issued paid cancelled"`
	Items         []invoiceLineRequest `json:"items" validate:"dive"`
}

type updateInvoiceRequest struct {
	ClientName  *string `json:"client_name"`
	ClientPAN   *string `json:"client_pan"`
	IssueDate   *string `json:"issue_date"`
	DueDate     *string `json:"due_date"`
	Subtotal    *string `json:"subtotal"`
	TaxAmount   *string `json:"tax_amount"`
	TotalAmount *string `json:"total_amount"`
	Status      *string `json:"status" validate:"omitempty,oneof=draft issued paid cancelled"`
}

// List handles GET /api/invoices. Line items are omitted from list responses.
func (h *InvoiceHandler) List(c echo.Context) error {
	invoices, err := h.service.ListInvoices(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, invoices)
}

// Get handles GET /api/invoices/:id, returning the invoice with its lines.
func (h *InvoiceHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	invoice, err := h.service.GetInvoice(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, invoice)
}

// Create handles POST /api/invoices. The header and all lines are written in
// one transaction.
//
// @Summary      Create an invoice
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body      createInvoiceRequest  true  "Invoice with line items"
// @Success      201   {object}  domain.Invoice
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/invoices [post]
func (h *InvoiceHandler) Create(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req createInvoiceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	issueDate, err := parseDate("issue_date", req.IssueDate)
	if err != nil {
		return err
	}
	dueDate, err := parseOptionalDate("due_date", req.DueDate)
	if err != nil {
		return err
	}

	input := ports.CreateInvoiceInput{
		InvoiceNumber: req.InvoiceNumber,
		ClientName:    req.ClientName,
		ClientPAN:     req.ClientPAN,
		IssueDate:     issueDate,
		DueDate:       dueDate,
		Subtotal:      req.Subtotal,
		TaxAmount:     req.TaxAmount,
		TotalAmount:   req.TotalAmount,
		Status:        domain.InvoiceStatus(req.Status),
		CreatedBy:     user.ID,
	}
	for _, line := range req.Items {
		input.Items = append(input.Items, ports.InvoiceLineInput{
			Description: line.Description,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Amount:      line.Amount,
		})
	}

	invoice, err := h.service.CreateInvoice(c.Request().Context(), input)
	if err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("invoice", "create").Inc()
	return c.JSON(http.StatusCreated, invoice)
}

// Update handles PATCH /api/invoices/:id. Header fields only.
func (h *InvoiceHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateInvoiceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	issueDate, err := parseOptionalDate("issue_date", req.IssueDate)
	if err != nil {
		return err
	}
	dueDate, err := parseOptionalDate("due_date", req.DueDate)
	if err != nil {
		return err
	}

	input := ports.UpdateInvoiceInput{
		ClientName:  req.ClientName,
		ClientPAN:   req.ClientPAN,
		IssueDate:   issueDate,
		DueDate:     dueDate,
		Subtotal:    req.Subtotal,
		TaxAmount:   req.TaxAmount,
		TotalAmount: req.TotalAmount,
	}
	if req.Status != nil {
		status := domain.InvoiceStatus(*req.Status)
		input.Status = &status
	}

	invoice, err := h.service.UpdateInvoice(c.Request().Context(), id, input)
	if err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("invoice", "update").Inc()
	return c.JSON(http.StatusOK, invoice)
}

// Delete handles DELETE /api/invoices/:id. Line items cascade.
func (h *InvoiceHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.DeleteInvoice(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("invoice", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
