package domain

import (
	"errors"
	"time"
)

const (
	LeaveSick     = "sick"
	LeaveVacation = "vacation"
	LeavePersonal = "personal"
)

const (
	LeavePending  = "pending"
	LeaveApproved = "approved"
	LeaveRejected = "rejected"
)

var ErrLeaveNotFound = errors.New("leave request not found")

// Leave is a leave-of-absence request. Dates are calendar dates in
// YYYY-MM-DD form. Status starts as pending and is only changed by admins.
type Leave struct {
	ID         int64     `json:"id"`
	EmployeeID int64     `json:"employeeId"`
	StartDate  string    `json:"startDate"`
	EndDate    string    `json:"endDate"`
	Type       string    `json:"type"`
	Reason     string    `json:"reason"`
	Status     string    `json:"status"`
	AdminNote  string    `json:"adminNote,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	Employee   *Employee `json:"employee,omitempty"`
}
