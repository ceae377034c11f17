package vacation

import (
	"github.com/cmlabs-hris/hris-backoffice-go/internal/pkg/validator"
)

type CreateShiftExceptionRequest struct {
	EmployeeID  int64   `json:"-"`
	Date        string  `json:"date"`
	Type        string  `json:"type"`
	Description *string `json:"description,omitempty"`
}

func (r *CreateShiftExceptionRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date is required"})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}
	if !ShiftExceptionType(r.Type).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: vacation, rest, sick_leave, other",
		})
	}
	if r.Description != nil && len(*r.Description) > 255 {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "description must not exceed 255 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ShiftExceptionResponse struct {
	ID          int64   `json:"id"`
	EmployeeID  int64   `json:"employee_id"`
	Date        string  `json:"date"`
	Type        string  `json:"type"`
	Description *string `json:"description"`
}

type VacationSettingResponse struct {
	ID           int64 `json:"id"`
	YearsFrom    int   `json:"years_from"`
	YearsTo      *int  `json:"years_to"`
	VacationDays int   `json:"vacation_days"`
}

type YearRecordResponse struct {
	Year                     int      `json:"year"`
	YearsPassed              int      `json:"years_passed"`
	EntitledDays             int      `json:"entitled_days"`
	UsedDays                 int      `json:"used_days"`
	RemainingDays            int      `json:"remaining_days"`
	AccumulatedAvailableDays int      `json:"accumulated_available_days"`
	UsedDates                []string `json:"used_dates"`
}

type BalanceResponse struct {
	EmployeeID int64                `json:"employee_id"`
	HireDate   string               `json:"hire_date"`
	Years      []YearRecordResponse `json:"years"`
}
