package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id int64) (EmployeeWithDetails, error)
	GetByUserID(ctx context.Context, userID int64) (Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) error
	SoftDelete(ctx context.Context, id int64) error

	// List runs the directory query with pagination and returns the total match count.
	List(ctx context.Context, filter EmployeeFilter) ([]EmployeeWithDetails, int64, error)
	// ListForReport runs the directory query without pagination, ordered by code.
	ListForReport(ctx context.Context, filter EmployeeFilter) ([]EmployeeWithDetails, error)
}
