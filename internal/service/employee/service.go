package employee

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/service/access"
)

const (
	defaultPage  = 1
	defaultLimit = 20
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	guard        *access.Guard
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, guard *access.Guard) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		guard:        guard,
	}
}

func mapEmployeeToResponse(emp employee.EmployeeWithDetails) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:               emp.ID,
		Code:             emp.Code,
		FirstName:        emp.FirstName,
		LastName:         emp.LastName,
		SecondLastName:   emp.SecondLastName,
		FullName:         emp.FullName(),
		HireDate:         emp.HireDate.Format(validator.DateLayout),
		DepartmentID:     emp.DepartmentID,
		DepartmentName:   emp.DepartmentName,
		PositionID:       emp.PositionID,
		PositionName:     emp.PositionName,
		BusinessUnitID:   emp.BusinessUnitID,
		BusinessUnitName: emp.BusinessUnitName,
		RFC:              emp.RFC,
		CURP:             emp.CURP,
		IMSSNSS:          emp.IMSSNSS,
		UserID:           emp.UserID,
		Active:           emp.IsActive(),
		CreatedAt:        emp.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:        emp.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
	if err := s.guard.CanAccessEmployee(ctx, id); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapEmployeeToResponse(emp), nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hireDate, _ := time.Parse(validator.DateLayout, req.HireDate)

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		Code:           req.Code,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		SecondLastName: req.SecondLastName,
		HireDate:       hireDate,
		DepartmentID:   req.DepartmentID,
		PositionID:     req.PositionID,
		BusinessUnitID: req.BusinessUnitID,
		PersonID:       req.PersonID,
		UserID:         req.UserID,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, created.ID)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to reload employee: %w", err)
	}

	return mapEmployeeToResponse(emp), nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.employeeRepo.Update(ctx, req); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to reload employee: %w", err)
	}

	return mapEmployeeToResponse(emp), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id int64) error {
	return s.employeeRepo.SoftDelete(ctx, id)
}

// ListEmployees implements employee.EmployeeService. Callers without employee.view_all
// only see the employees they are responsible for.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	if filter.Page <= 0 {
		filter.Page = defaultPage
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultLimit
	}
	if err := filter.Validate(); err != nil {
		return employee.ListEmployeeResponse{}, err
	}
	if err := s.guard.ScopeFilter(ctx, &filter); err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))
	showing := fmt.Sprintf("%d-%d of %d", (filter.Page-1)*filter.Limit+1, min(filter.Page*filter.Limit, int(total)), total)
	if total == 0 {
		showing = "0 of 0"
	}

	return employee.ListEmployeeResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Showing:    showing,
		Employees:  responses,
	}, nil
}
