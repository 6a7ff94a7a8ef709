package domain

import "errors"

var ErrEmployeeNotFound = errors.New("employee not found")
var ErrEmployeeEmailTaken = errors.New("employee email already exists")

// DepartmentRef is the lightweight department projection embedded in
// employee rows on list responses.
type DepartmentRef struct {
	Name string `json:"name"`
}

// Employee is the business record for a staff member. JoiningDate is a
// calendar date in YYYY-MM-DD form; time-of-day is meaningless for it.
type Employee struct {
	ID           int64          `json:"id"`
	Name         string         `json:"name"`
	Email        string         `json:"email"`
	Position     string         `json:"position"`
	DepartmentID int64          `json:"departmentId"`
	Salary       float64        `json:"salary"`
	JoiningDate  string         `json:"joiningDate"`
	Department   *DepartmentRef `json:"department,omitempty"`
}
