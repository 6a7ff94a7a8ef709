package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/teamtrack/employee-system/internal/core/ports"
)

type AttendanceHandler struct {
	attendanceService ports.AttendanceService
}

func NewAttendanceHandler(attendanceService ports.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

type checkInRequest struct {
	EmployeeID int64      `json:"employeeId" validate:"required,gte=1"`
	CheckIn    time.Time  `json:"checkIn" validate:"required"`
	CheckOut   *time.Time `json:"checkOut"`
}

type checkOutRequest struct {
	EmployeeID int64     `json:"employeeId" validate:"required,gte=1"`
	CheckOut   time.Time `json:"checkOut" validate:"required"`
}

// CheckIn records a check-in for an employee. Admin only.
//
// @Summary      Record a check-in
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      checkInRequest  true  "Check-in details"
// @Success      201   {object}  domain.Attendance
// @Failure      400   {object}  errorPayload
// @Failure      404   {object}  errorPayload
// @Router       /attendance/check-in [post]
func (h *AttendanceHandler) CheckIn(c echo.Context) error {
	var req checkInRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	record, err := h.attendanceService.CheckIn(c.Request().Context(), ports.CheckInInput{
		EmployeeID: req.EmployeeID,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, record)
}

// CheckOut closes every open record for the employee.
//
// @Summary      Record a check-out
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      checkOutRequest  true  "Check-out details"
// @Success      200   {object}  ports.CheckOutResult
// @Failure      400   {object}  errorPayload
// @Failure      404   {object}  errorPayload
// @Router       /attendance/check-out [post]
func (h *AttendanceHandler) CheckOut(c echo.Context) error {
	var req checkOutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	result, err := h.attendanceService.CheckOut(c.Request().Context(), ports.CheckOutInput{
		EmployeeID: req.EmployeeID,
		CheckOut:   req.CheckOut,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// ListRecent returns the most recent records across all employees.
//
// @Summary      List recent attendance
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Attendance
// @Router       /attendance [get]
func (h *AttendanceHandler) ListRecent(c echo.Context) error {
	records, err := h.attendanceService.ListRecent(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, records)
}

// ListByEmployee returns one employee's attendance history, newest first.
//
// @Summary      List attendance for an employee
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Param        employeeId  path      int  true  "Employee ID"
// @Success      200         {array}   domain.Attendance
// @Failure      404         {object}  errorPayload
// @Router       /attendance/{employeeId} [get]
func (h *AttendanceHandler) ListByEmployee(c echo.Context) error {
	employeeID, err := pathID(c, "employeeId")
	if err != nil {
		return err
	}

	records, err := h.attendanceService.ListByEmployee(c.Request().Context(), employeeID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, records)
}
