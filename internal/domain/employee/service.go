package employee

import (
	"context"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// GetEmployee retrieves a single employee by ID (employees may only read themselves)
	GetEmployee(ctx context.Context, id int64) (EmployeeResponse, error)

	// CreateEmployee creates a new employee
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// UpdateEmployee updates an existing employee
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee soft deletes an employee
	DeleteEmployee(ctx context.Context, id int64) error

	// ListEmployees runs the paginated directory query
	ListEmployees(ctx context.Context, filter EmployeeFilter) (ListEmployeeResponse, error)
}
