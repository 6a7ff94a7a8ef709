package domain

import "time"

// EmployeeRef is the lightweight employee projection embedded in attendance
// rows on list responses.
type EmployeeRef struct {
	Name string `json:"name"`
}

// Attendance records a single working day for an employee. CheckOut stays
// nil until the matching check-out is submitted.
type Attendance struct {
	ID         int64        `json:"id"`
	EmployeeID int64        `json:"employeeId"`
	Date       string       `json:"date"`
	CheckIn    time.Time    `json:"checkIn"`
	CheckOut   *time.Time   `json:"checkOut"`
	Employee   *EmployeeRef `json:"employee,omitempty"`
}
