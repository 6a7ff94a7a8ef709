package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidToken = errors.New("invalid token")
var ErrUserNotFound = errors.New("user not found")
var ErrUsernameTaken = errors.New("username already exists")
var ErrAccountExists = errors.New("account already exists for this employee")
var ErrEmailNotRegistered = errors.New("email not registered as an employee")

// User is the authentication identity. It is distinct from the Employee
// business record it may link to: at most one User per Employee, username
// globally unique.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	EmployeeID   *int64    `json:"employeeId"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Claims is the decoded payload embedded in an access token.
type Claims struct {
	UserID     int64
	Role       string
	EmployeeID *int64
}
