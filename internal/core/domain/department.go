package domain

import "errors"

var ErrDepartmentNotFound = errors.New("department not found")
var ErrDepartmentInUse = errors.New("department still has employees assigned")

// Department groups employees. Description is optional.
type Department struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
