package employee

import "errors"

var (
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrEmployeeCodeExists   = errors.New("employee code already exists")
	ErrFutureDateNotAllowed = errors.New("date cannot be in the future")
	ErrUnauthorized         = errors.New("unauthorized to access this employee")
	ErrInvalidReference     = errors.New("department, position or business unit does not exist")
)
