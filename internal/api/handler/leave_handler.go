package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/teamtrack/employee-system/internal/api/metrics"
	"github.com/teamtrack/employee-system/internal/core/ports"
)

type LeaveHandler struct {
	leaveService ports.LeaveService
}

func NewLeaveHandler(leaveService ports.LeaveService) *LeaveHandler {
	return &LeaveHandler{leaveService: leaveService}
}

type leaveRequest struct {
	EmployeeID int64  `json:"employeeId" validate:"required,gte=1"`
	StartDate  string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate    string `json:"endDate" validate:"required,datetime=2006-01-02"`
	Type       string `json:"type" validate:"required,oneof=sick vacation personal"`
	Reason     string `json:"reason" validate:"required,min=5"`
}

type leaveStatusRequest struct {
	Status    string `json:"status" validate:"required,oneof=pending approved rejected"`
	AdminNote string `json:"adminNote"`
}

// List returns leave requests scoped by role: admins see all of them,
// employees only their own.
//
// @Summary      List leave requests
// @Tags         leaves
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Leave
// @Failure      404  {object}  errorPayload
// @Router       /leaves [get]
func (h *LeaveHandler) List(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	leaves, err := h.leaveService.ListFor(c.Request().Context(), *claims)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, leaves)
}

// Create submits a new leave request; it starts in pending status.
//
// @Summary      Create leave request
// @Tags         leaves
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      leaveRequest  true  "Leave request details"
// @Success      201   {object}  domain.Leave
// @Failure      400   {object}  errorPayload
// @Failure      404   {object}  errorPayload
// @Router       /leaves [post]
func (h *LeaveHandler) Create(c echo.Context) error {
	var req leaveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	leave, err := h.leaveService.Create(c.Request().Context(), ports.LeaveInput{
		EmployeeID: req.EmployeeID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Type:       req.Type,
		Reason:     req.Reason,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, leave)
}

// UpdateStatus approves or rejects a leave request. Admin only.
//
// @Summary      Update leave status
// @Tags         leaves
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                 true  "Leave ID"
// @Param        body  body      leaveStatusRequest  true  "Decision"
// @Success      200   {object}  domain.Leave
// @Failure      400   {object}  errorPayload
// @Failure      404   {object}  errorPayload
// @Router       /leaves/{id} [put]
func (h *LeaveHandler) UpdateStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req leaveStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	leave, err := h.leaveService.UpdateStatus(c.Request().Context(), id, ports.LeaveStatusInput{
		Status:    req.Status,
		AdminNote: req.AdminNote,
	})
	if err != nil {
		return err
	}

	metrics.LeaveDecisionsTotal.WithLabelValues(leave.Status).Inc()
	return c.JSON(http.StatusOK, leave)
}

// Delete removes a leave request. Admin only.
//
// @Summary      Delete leave request
// @Tags         leaves
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Leave ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  errorPayload
// @Router       /leaves/{id} [delete]
func (h *LeaveHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.leaveService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Leave request deleted successfully"})
}
