package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/workwell/backoffice/internal/api/metrics"
	"github.com/workwell/backoffice/internal/core/domain"
	"github.com/workwell/backoffice/internal/core/ports"
)

// AttendanceHandler handles HTTP requests for attendance records.
type AttendanceHandler struct {
	service ports.AttendanceService
}

func NewAttendanceHandler(service ports.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{service: service}
}

type createAttendanceRequest struct {
	UserID   int64      `json:"user_id" validate:"required,gt=0"`
	Date     string     `json:"date" validate:"required"`
	CheckIn  *time.Time `json:"check_in"`
	CheckOut *time.Time `json:"check_out"`
	Status   string     `json:"status" validate:"required,oneof=present absent half_day"`
}

type updateAttendanceRequest struct {
	Date     *string    `json:"date"`
	CheckIn  *time.Time `json:"check_in"`
	CheckOut *time.Time `json:"check_out"`
	Status   *string    `json:"status" validate:"omitempty,oneof=present absent half_day"`
}

// List handles GET /api/attendance.
func (h *AttendanceHandler) List(c echo.Context) error {
	records, err := h.service.ListAttendance(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, records)
}

// ListByUser handles GET /api/attendance/user/:userId.
func (h *AttendanceHandler) ListByUser(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	records, err := h.service.ListUserAttendance(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, records)
}

// Create handles POST /api/attendance.
//
// @Summary      Record attendance
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Param        body  body      createAttendanceRequest  true  "Attendance details"
// @Success      201   {object}  domain.Attendance
// @Failure      400   {object}  map[string]string
// @Router       /api/attendance [post]
func (h *AttendanceHandler) Create(c echo.Context) error {
	var req createAttendanceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	date, err := parseDate("date", req.Date)
	if err != nil {
		return err
	}

	record, err := h.service.CreateAttendance(c.Request().Context(), ports.CreateAttendanceInput{
		UserID:   req.UserID,
		Date:     date,
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
		Status:   domain.AttendanceStatus(req.Status),
	})
	if err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("attendance", "create").Inc()
	return c.JSON(http.StatusCreated, record)
}

// Update handles PATCH /api/attendance/:id.
func (h *AttendanceHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateAttendanceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	date, err := parseOptionalDate("date", req.Date)
	if err != nil {
		return err
	}

	input := ports.UpdateAttendanceInput{
		Date:     date,
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
	}
	if req.Status != nil {
		status := domain.AttendanceStatus(*req.Status)
		input.Status = &status
	}

	record, err := h.service.UpdateAttendance(c.Request().Context(), id, input)
	if err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("attendance", "update").Inc()
	return c.JSON(http.StatusOK, record)
}
