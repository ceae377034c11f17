package vacation

import (
	"context"
)

// AccrualCalculator turns tenure brackets and vacation exceptions into year records.
type AccrualCalculator interface {
	// CalculateYears returns, per employee, one record per year in the given order.
	// Accumulated days run from each employee's hire year, whatever the first year given.
	CalculateYears(ctx context.Context, employees []Tenure, years []int) map[int64][]YearRecord
}

type VacationService interface {
	GetBalance(ctx context.Context, employeeID int64, year int) (BalanceResponse, error)
	ListSettings(ctx context.Context) ([]VacationSettingResponse, error)

	CreateShiftException(ctx context.Context, req CreateShiftExceptionRequest) (ShiftExceptionResponse, error)
	ListShiftExceptions(ctx context.Context, employeeID int64, year int) ([]ShiftExceptionResponse, error)
	DeleteShiftException(ctx context.Context, id int64) error
}
