package report

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/vacation"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/pkg/validator"
)

const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// VacationReportFilter selects the employees and the year range of a vacation report.
type VacationReportFilter struct {
	Search            string
	DepartmentID      int64
	PositionID        int64
	EmployeeID        int64
	ResponsibleUserID int64
	OnlyInactive      bool
	StartDate         string
	EndDate           string
	// OnlyOneYear starts the range at StartDate's year instead of the first recorded vacation.
	OnlyOneYear bool
}

func (f *VacationReportFilter) Validate() error {
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
	for _, date := range []struct {
		field string
		value time.Time
		ok    bool
	}{
		{"filter_start_date", start, startOK},
		{"filter_end_date", end, endOK},
	} {
		if date.ok && !vacation.ValidYear(date.value.Year()) {
			errs = append(errs, validator.ValidationError{
				Field:   date.field,
				Message: fmt.Sprintf("%s year must be between %d and %d", date.field, vacation.MinYear, vacation.MaxYear),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EmployeeFilter is the directory query feeding the report. The date range only
// selects report years, it does not narrow the employee set.
func (f VacationReportFilter) EmployeeFilter() employee.EmployeeFilter {
	return employee.EmployeeFilter{
		Search:            f.Search,
		DepartmentID:      f.DepartmentID,
		PositionID:        f.PositionID,
		EmployeeID:        f.EmployeeID,
		ResponsibleUserID: f.ResponsibleUserID,
		OnlyInactive:      f.OnlyInactive,
	}
}

// File is a generated workbook ready to be sent as a download.
type File struct {
	Filename    string
	ContentType string
	Content     []byte
}
