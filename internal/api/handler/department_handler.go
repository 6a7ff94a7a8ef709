package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/teamtrack/employee-system/internal/core/ports"
)

type DepartmentHandler struct {
	departmentService ports.DepartmentService
}

func NewDepartmentHandler(departmentService ports.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{departmentService: departmentService}
}

type departmentRequest struct {
	Name        string `json:"name" validate:"required,min=2"`
	Description string `json:"description"`
}

// List returns all departments.
//
// @Summary      List departments
// @Tags         departments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Department
// @Router       /departments [get]
func (h *DepartmentHandler) List(c echo.Context) error {
	departments, err := h.departmentService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, departments)
}

// Get returns one department by id.
//
// @Summary      Get department
// @Tags         departments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Department ID"
// @Success      200  {object}  domain.Department
// @Failure      404  {object}  errorPayload
// @Router       /departments/{id} [get]
func (h *DepartmentHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	department, err := h.departmentService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, department)
}

// Create adds a department. Admin only.
//
// @Summary      Create department
// @Tags         departments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      departmentRequest  true  "Department details"
// @Success      201   {object}  domain.Department
// @Failure      400   {object}  errorPayload
// @Router       /departments [post]
func (h *DepartmentHandler) Create(c echo.Context) error {
	var req departmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	department, err := h.departmentService.Create(c.Request().Context(), ports.DepartmentInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, department)
}

// Update replaces a department's details. Admin only.
//
// @Summary      Update department
// @Tags         departments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "Department ID"
// @Param        body  body      departmentRequest  true  "Department details"
// @Success      200   {object}  domain.Department
// @Failure      400   {object}  errorPayload
// @Failure      404   {object}  errorPayload
// @Router       /departments/{id} [put]
func (h *DepartmentHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req departmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	department, err := h.departmentService.Update(c.Request().Context(), id, ports.DepartmentInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, department)
}

// Delete removes a department. Refused with 409 while employees are still
// assigned to it. Admin only.
//
// @Summary      Delete department
// @Tags         departments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Department ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  errorPayload
// @Failure      409  {object}  errorPayload
// @Router       /departments/{id} [delete]
func (h *DepartmentHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.departmentService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Department deleted successfully"})
}
