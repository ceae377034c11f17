package vacation

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/vacation"
)

type AccrualCalculator struct {
	settingRepo   vacation.VacationSettingRepository
	exceptionRepo vacation.ShiftExceptionRepository
}

func NewAccrualCalculator(settingRepo vacation.VacationSettingRepository, exceptionRepo vacation.ShiftExceptionRepository) *AccrualCalculator {
	return &AccrualCalculator{
		settingRepo:   settingRepo,
		exceptionRepo: exceptionRepo,
	}
}

// YearsPassed is the whole number of service years an employee completes during year.
func YearsPassed(hireDate time.Time, year int) int {
	if passed := year - hireDate.Year(); passed > 0 {
		return passed
	}
	return 0
}

// EntitledDays returns the vacation days of the bracket covering yearsPassed, or 0.
func EntitledDays(settings []vacation.VacationSetting, yearsPassed int) int {
	if yearsPassed <= 0 {
		return 0
	}
	for _, s := range settings {
		if s.Covers(yearsPassed) {
			return s.VacationDays
		}
	}
	return 0
}

// BuildYearRecord computes one year of balance. Used dates outside year are ignored.
func BuildYearRecord(hireDate time.Time, year int, settings []vacation.VacationSetting, usedDates []time.Time) vacation.YearRecord {
	dates := make([]time.Time, 0, len(usedDates))
	for _, d := range usedDates {
		if d.Year() == year {
			dates = append(dates, d)
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	passed := YearsPassed(hireDate, year)
	entitled := EntitledDays(settings, passed)

	return vacation.YearRecord{
		Year:          year,
		YearsPassed:   passed,
		EntitledDays:  entitled,
		UsedDays:      len(dates),
		RemainingDays: entitled - len(dates),
		UsedDates:     dates,
	}
}

// CalculateYears implements vacation.AccrualCalculator. Lookups run once per year for
// all employees. A failed lookup degrades that year to zero entitlement and zero use.
// Accumulated days always run from the hire year: years between the earliest hire year
// and the first requested year are folded in without being returned.
func (c *AccrualCalculator) CalculateYears(ctx context.Context, employees []vacation.Tenure, years []int) map[int64][]vacation.YearRecord {
	result := make(map[int64][]vacation.YearRecord, len(employees))
	if len(employees) == 0 || len(years) == 0 {
		return result
	}

	settings, err := c.settingRepo.List(ctx)
	settingsFailed := err != nil
	if settingsFailed {
		slog.Warn("vacation settings lookup failed, entitlement degraded to zero", "error", err)
	}

	accumulated := make(map[int64]int, len(employees))
	if !settingsFailed {
		c.accumulateBefore(ctx, employees, firstYear(years), settings, accumulated)
	}

	ids := tenureIDs(employees)
	for _, year := range years {
		usedByEmployee, yearFailed := c.vacationDates(ctx, ids, year)

		for _, emp := range employees {
			var record vacation.YearRecord
			if yearFailed || settingsFailed {
				record = degradedRecord(emp, year)
			} else {
				record = BuildYearRecord(emp.HireDate, year, settings, usedByEmployee[emp.EmployeeID])
			}

			accumulated[emp.EmployeeID] += record.RemainingDays
			record.AccumulatedAvailableDays = accumulated[emp.EmployeeID]
			result[emp.EmployeeID] = append(result[emp.EmployeeID], record)
		}
	}

	return result
}

// accumulateBefore adds the remaining days of every service year before until. Only
// employees already hired in a year take part in its lookup.
func (c *AccrualCalculator) accumulateBefore(ctx context.Context, employees []vacation.Tenure, until int, settings []vacation.VacationSetting, accumulated map[int64]int) {
	from := until
	for _, emp := range employees {
		if y := emp.HireDate.Year(); y < from {
			from = y
		}
	}
	if from < vacation.MinYear {
		from = vacation.MinYear
	}

	for year := from; year < until; year++ {
		var hired []vacation.Tenure
		for _, emp := range employees {
			if emp.HireDate.Year() <= year {
				hired = append(hired, emp)
			}
		}
		if len(hired) == 0 {
			continue
		}

		usedByEmployee, failed := c.vacationDates(ctx, tenureIDs(hired), year)
		if failed {
			continue
		}
		for _, emp := range hired {
			accumulated[emp.EmployeeID] += BuildYearRecord(emp.HireDate, year, settings, usedByEmployee[emp.EmployeeID]).RemainingDays
		}
	}
}

// vacationDates reports a failed lookup as true after logging it.
func (c *AccrualCalculator) vacationDates(ctx context.Context, ids []int64, year int) (map[int64][]time.Time, bool) {
	usedByEmployee, err := c.exceptionRepo.VacationDatesByYear(ctx, ids, year)
	if err != nil {
		slog.Warn("vacation usage lookup failed, year degraded to zero",
			"year", year,
			"employees", len(ids),
			"error", err,
		)
		return nil, true
	}
	return usedByEmployee, false
}

func degradedRecord(emp vacation.Tenure, year int) vacation.YearRecord {
	return vacation.YearRecord{Year: year, YearsPassed: YearsPassed(emp.HireDate, year), UsedDates: []time.Time{}}
}

func tenureIDs(employees []vacation.Tenure) []int64 {
	ids := make([]int64, 0, len(employees))
	for _, emp := range employees {
		ids = append(ids, emp.EmployeeID)
	}
	return ids
}

func firstYear(years []int) int {
	first := years[0]
	for _, y := range years[1:] {
		if y < first {
			first = y
		}
	}
	return first
}
