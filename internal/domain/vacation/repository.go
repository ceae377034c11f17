package vacation

import (
	"context"
	"time"
)

type VacationSettingRepository interface {
	List(ctx context.Context) ([]VacationSetting, error)
}

type ShiftExceptionRepository interface {
	Create(ctx context.Context, exception ShiftException) (ShiftException, error)
	GetByID(ctx context.Context, id int64) (ShiftException, error)
	// ListByEmployee returns live exceptions ordered by date. year 0 means all years.
	ListByEmployee(ctx context.Context, employeeID int64, year int) ([]ShiftException, error)
	SoftDelete(ctx context.Context, id int64) error

	// VacationDatesByYear returns the vacation dates in year for each of the employees.
	VacationDatesByYear(ctx context.Context, employeeIDs []int64, year int) (map[int64][]time.Time, error)
	// EarliestVacationYear returns the first year any vacation exception exists, system wide.
	EarliestVacationYear(ctx context.Context) (year int, found bool, err error)
}
