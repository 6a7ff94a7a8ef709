package handler

import "github.com/teamtrack/employee-system/internal/core/ports"

// employeeRequest is the create/update payload for an employee. Binding to
// this struct is what strips unknown fields from the body; only the declared
// fields ever reach the service layer.
type employeeRequest struct {
	Name         string  `json:"name" validate:"required,min=2"`
	Email        string  `json:"email" validate:"required,email"`
	Position     string  `json:"position" validate:"required,min=2"`
	DepartmentID int64   `json:"departmentId" validate:"required,gte=1"`
	Salary       float64 `json:"salary" validate:"gte=0"`
	JoiningDate  string  `json:"joiningDate" validate:"required,datetime=2006-01-02"`
}

func (r employeeRequest) toInput() ports.EmployeeInput {
	return ports.EmployeeInput{
		Name:         r.Name,
		Email:        r.Email,
		Position:     r.Position,
		DepartmentID: r.DepartmentID,
		Salary:       r.Salary,
		JoiningDate:  r.JoiningDate,
	}
}
