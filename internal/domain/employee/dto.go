package employee

import (
	"time"

	"github.com/cmlabs-hris/hris-backoffice-go/internal/pkg/validator"
)

// EmployeeFilter drives the employee directory query. Numeric ids use 0 for "unset".
type EmployeeFilter struct {
	Search            string
	DepartmentID      int64
	PositionID        int64
	EmployeeID        int64
	ResponsibleUserID int64
	// OnlyInactive includes soft-deleted employees alongside active ones.
	OnlyInactive bool
	StartDate    string
	EndDate      string

	// Pagination, ignored by report queries
	Page  int
	Limit int
}

func (f *EmployeeFilter) Validate() error {
	var errs validator.ValidationErrors

	var start, end time.Time
	var startOK, endOK bool
	if f.StartDate != "" {
		if start, startOK = validator.IsValidDate(f.StartDate); !startOK {
			errs = append(errs, validator.ValidationError{
				Field:   "filter_start_date",
				Message: "filter_start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.EndDate != "" {
		if end, endOK = validator.IsValidDate(f.EndDate); !endOK {
			errs = append(errs, validator.ValidationError{
				Field:   "filter_end_date",
				Message: "filter_end_date must be in YYYY-MM-DD format",
			})
		}
	}
	if startOK && endOK && start.After(end) {
		errs = append(errs, validator.ValidationError{
			Field:   "filter_end_date",
			Message: "filter_end_date must be after filter_start_date",
		})
	}

	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateEmployeeRequest struct {
	Code           string  `json:"code"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	SecondLastName *string `json:"second_last_name,omitempty"`
	HireDate       string  `json:"hire_date"`
	DepartmentID   int64   `json:"department_id"`
	PositionID     int64   `json:"position_id"`
	BusinessUnitID int64   `json:"business_unit_id"`
	PersonID       *int64  `json:"person_id,omitempty"`
	UserID         *int64  `json:"user_id,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "code is required"})
	} else if len(r.Code) > 20 {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "code must not exceed 20 characters"})
	}
	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "first_name is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "last_name is required"})
	}
	errs = append(errs, validateHireDate(r.HireDate)...)
	if r.DepartmentID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "department_id", Message: "department_id is required"})
	}
	if r.PositionID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "position_id", Message: "position_id is required"})
	}
	if r.BusinessUnitID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "business_unit_id", Message: "business_unit_id is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateEmployeeRequest only touches the fields that are present.
type UpdateEmployeeRequest struct {
	ID             int64   `json:"-"`
	Code           *string `json:"code,omitempty"`
	FirstName      *string `json:"first_name,omitempty"`
	LastName       *string `json:"last_name,omitempty"`
	SecondLastName *string `json:"second_last_name,omitempty"`
	HireDate       *string `json:"hire_date,omitempty"`
	DepartmentID   *int64  `json:"department_id,omitempty"`
	PositionID     *int64  `json:"position_id,omitempty"`
	BusinessUnitID *int64  `json:"business_unit_id,omitempty"`
	UserID         *int64  `json:"user_id,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if r.Code != nil {
		if validator.IsEmpty(*r.Code) {
			errs = append(errs, validator.ValidationError{Field: "code", Message: "code must not be empty"})
		} else if len(*r.Code) > 20 {
			errs = append(errs, validator.ValidationError{Field: "code", Message: "code must not exceed 20 characters"})
		}
	}
	if r.FirstName != nil && validator.IsEmpty(*r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "first_name must not be empty"})
	}
	if r.LastName != nil && validator.IsEmpty(*r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "last_name must not be empty"})
	}
	if r.HireDate != nil {
		errs = append(errs, validateHireDate(*r.HireDate)...)
	}
	if r.DepartmentID != nil && *r.DepartmentID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "department_id", Message: "department_id must be positive"})
	}
	if r.PositionID != nil && *r.PositionID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "position_id", Message: "position_id must be positive"})
	}
	if r.BusinessUnitID != nil && *r.BusinessUnitID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "business_unit_id", Message: "business_unit_id must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateHireDate(raw string) validator.ValidationErrors {
	if validator.IsEmpty(raw) {
		return validator.ValidationErrors{{Field: "hire_date", Message: "hire_date is required"}}
	}
	hireDate, ok := validator.IsValidDate(raw)
	if !ok {
		return validator.ValidationErrors{{Field: "hire_date", Message: "hire_date must be in YYYY-MM-DD format"}}
	}
	if hireDate.After(time.Now()) {
		return validator.ValidationErrors{{Field: "hire_date", Message: ErrFutureDateNotAllowed.Error()}}
	}
	return nil
}

type EmployeeResponse struct {
	ID               int64   `json:"id"`
	Code             string  `json:"code"`
	FirstName        string  `json:"first_name"`
	LastName         string  `json:"last_name"`
	SecondLastName   *string `json:"second_last_name"`
	FullName         string  `json:"full_name"`
	HireDate         string  `json:"hire_date"`
	DepartmentID     int64   `json:"department_id"`
	DepartmentName   *string `json:"department_name"`
	PositionID       int64   `json:"position_id"`
	PositionName     *string `json:"position_name"`
	BusinessUnitID   int64   `json:"business_unit_id"`
	BusinessUnitName *string `json:"business_unit_name"`
	RFC              *string `json:"rfc"`
	CURP             *string `json:"curp"`
	IMSSNSS          *string `json:"imss_nss"`
	UserID           *int64  `json:"user_id"`
	Active           bool    `json:"active"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

type ListEmployeeResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
	Showing    string             `json:"showing"`
	Employees  []EmployeeResponse `json:"employees"`
}
