package employee

import "errors"

var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrEmailExists       = errors.New("email already registered")
	ErrInvalidBaseSalary = errors.New("base salary must be zero or positive")
	ErrInvalidHireDate   = errors.New("hire date cannot be in the future")
)
