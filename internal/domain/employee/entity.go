package employee

import (
	"strings"
	"time"
)

type Employee struct {
	ID             int64
	Code           string
	FirstName      string
	LastName       string
	SecondLastName *string
	HireDate       time.Time
	DepartmentID   int64
	PositionID     int64
	BusinessUnitID int64
	PersonID       *int64
	UserID         *int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time
}

// FullName joins the name parts the way they are searched.
func (e Employee) FullName() string {
	parts := []string{e.FirstName, e.LastName}
	if e.SecondLastName != nil && *e.SecondLastName != "" {
		parts = append(parts, *e.SecondLastName)
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

func (e Employee) IsActive() bool {
	return e.DeletedAt == nil
}

// EmployeeWithDetails is an employee joined with its department, position,
// business unit and person records.
type EmployeeWithDetails struct {
	Employee
	DepartmentName   *string
	PositionName     *string
	BusinessUnitName *string
	BusinessUnitSlug *string
	RFC              *string
	CURP             *string
	IMSSNSS          *string
}
