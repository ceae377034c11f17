package report

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/report"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/vacation"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/pkg/validator"
)

// yearRange picks the calendar years a report covers. The end is the filter's end year,
// or the current year. The start is the filter's start year when OnlyOneYear is set,
// otherwise the first year anyone took a vacation, falling back to the filter's start year.
// Both ends must fall within vacation.MinYear and vacation.MaxYear.
func (s *ReportServiceImpl) yearRange(ctx context.Context, filter report.VacationReportFilter) (int, int, error) {
	current := s.now().Year()

	endYear := current
	if end, ok := validator.IsValidDate(filter.EndDate); ok {
		endYear = end.Year()
	}

	startYear := current
	if start, ok := validator.IsValidDate(filter.StartDate); ok {
		startYear = start.Year()
	}

	if !filter.OnlyOneYear {
		earliest, found, err := s.exceptionRepo.EarliestVacationYear(ctx)
		if err != nil {
			return 0, 0, err
		}
		if found {
			startYear = earliest
		}
	}

	for _, bound := range []struct {
		field string
		year  int
	}{
		{"filter_start_date", startYear},
		{"filter_end_date", endYear},
	} {
		if !vacation.ValidYear(bound.year) {
			return 0, 0, validator.ValidationErrors{{
				Field:   bound.field,
				Message: fmt.Sprintf("report year %d is outside %d to %d", bound.year, vacation.MinYear, vacation.MaxYear),
			}}
		}
	}

	if startYear > endYear {
		return 0, 0, validator.ValidationErrors{{
			Field:   "filter_end_date",
			Message: fmt.Sprintf("%s (%d > %d)", report.ErrInvalidYearRange.Error(), startYear, endYear),
		}}
	}
	return startYear, endYear, nil
}
