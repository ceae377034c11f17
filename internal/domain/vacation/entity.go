package vacation

import "time"

// Calendar years accepted by balance lookups and reports.
const (
	MinYear = 1900
	MaxYear = 2999
)

func ValidYear(year int) bool {
	return year >= MinYear && year <= MaxYear
}

type ShiftExceptionType string

const (
	ShiftExceptionVacation  ShiftExceptionType = "vacation"
	ShiftExceptionRest      ShiftExceptionType = "rest"
	ShiftExceptionSickLeave ShiftExceptionType = "sick_leave"
	ShiftExceptionOther     ShiftExceptionType = "other"
)

func (t ShiftExceptionType) IsValid() bool {
	switch t {
	case ShiftExceptionVacation, ShiftExceptionRest, ShiftExceptionSickLeave, ShiftExceptionOther:
		return true
	}
	return false
}

// ShiftException marks a single date of an employee's schedule. Vacation-typed
// exceptions are the days consumed from the yearly entitlement.
type ShiftException struct {
	ID          int64
	EmployeeID  int64
	Date        time.Time
	Type        ShiftExceptionType
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// VacationSetting is a tenure bracket. YearsTo nil means open ended.
type VacationSetting struct {
	ID           int64
	YearsFrom    int
	YearsTo      *int
	VacationDays int
}

func (s VacationSetting) Covers(yearsPassed int) bool {
	if yearsPassed < s.YearsFrom {
		return false
	}
	return s.YearsTo == nil || yearsPassed <= *s.YearsTo
}

// Tenure is the minimum an accrual needs to know about an employee.
type Tenure struct {
	EmployeeID int64
	HireDate   time.Time
}

// YearRecord is the derived vacation balance of one employee for one calendar year.
// RemainingDays is EntitledDays - UsedDays and may be negative.
type YearRecord struct {
	Year                     int
	YearsPassed              int
	EntitledDays             int
	UsedDays                 int
	RemainingDays            int
	AccumulatedAvailableDays int
	UsedDates                []time.Time
}
