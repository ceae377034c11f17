package vacation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/vacation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func lftSettings() []vacation.VacationSetting {
	return []vacation.VacationSetting{
		{ID: 1, YearsFrom: 1, YearsTo: intPtr(1), VacationDays: 12},
		{ID: 2, YearsFrom: 2, YearsTo: intPtr(2), VacationDays: 14},
		{ID: 3, YearsFrom: 3, YearsTo: intPtr(3), VacationDays: 16},
		{ID: 4, YearsFrom: 4, YearsTo: intPtr(4), VacationDays: 18},
		{ID: 5, YearsFrom: 5, YearsTo: intPtr(5), VacationDays: 20},
		{ID: 6, YearsFrom: 6, YearsTo: intPtr(10), VacationDays: 22},
		{ID: 7, YearsFrom: 31, YearsTo: nil, VacationDays: 32},
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestYearsPassed(t *testing.T) {
	hire := date(2019, time.June, 15)

	assert.Equal(t, 0, YearsPassed(hire, 2018))
	assert.Equal(t, 0, YearsPassed(hire, 2019))
	assert.Equal(t, 1, YearsPassed(hire, 2020))
	assert.Equal(t, 5, YearsPassed(hire, 2024))
}

func TestEntitledDays(t *testing.T) {
	settings := lftSettings()

	cases := []struct {
		years int
		want  int
	}{
		{0, 0},
		{1, 12},
		{2, 14},
		{7, 22},
		{10, 22},
		{15, 0},
		{40, 32},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, EntitledDays(settings, c.years), "years=%d", c.years)
	}
}

func TestBuildYearRecord_NoExceptions(t *testing.T) {
	rec := BuildYearRecord(date(2020, time.March, 1), 2023, lftSettings(), nil)

	assert.Equal(t, 3, rec.YearsPassed)
	assert.Equal(t, 16, rec.EntitledDays)
	assert.Equal(t, 0, rec.UsedDays)
	assert.Equal(t, rec.EntitledDays, rec.RemainingDays)
	assert.Empty(t, rec.UsedDates)
}

func TestBuildYearRecord_OverUseIsNotClamped(t *testing.T) {
	var used []time.Time
	for d := 1; d <= 14; d++ {
		used = append(used, date(2021, time.July, d))
	}

	rec := BuildYearRecord(date(2020, time.January, 10), 2021, lftSettings(), used)

	assert.Equal(t, 12, rec.EntitledDays)
	assert.Equal(t, 14, rec.UsedDays)
	assert.Equal(t, -2, rec.RemainingDays)
}

func TestBuildYearRecord_SortsAndFiltersDates(t *testing.T) {
	used := []time.Time{date(2022, time.May, 3), date(2021, time.December, 31), date(2022, time.January, 2)}

	rec := BuildYearRecord(date(2018, time.January, 1), 2022, lftSettings(), used)

	require.Len(t, rec.UsedDates, 2)
	assert.Equal(t, date(2022, time.January, 2), rec.UsedDates[0])
	assert.Equal(t, date(2022, time.May, 3), rec.UsedDates[1])
}

type stubSettingRepo struct {
	settings []vacation.VacationSetting
	err      error
}

func (s stubSettingRepo) List(context.Context) ([]vacation.VacationSetting, error) {
	return s.settings, s.err
}

type stubExceptionRepo struct {
	vacation.ShiftExceptionRepository
	byYear  map[int]map[int64][]time.Time
	failing map[int]bool
	calls   []int
}

func (s *stubExceptionRepo) VacationDatesByYear(_ context.Context, _ []int64, year int) (map[int64][]time.Time, error) {
	s.calls = append(s.calls, year)
	if s.failing[year] {
		return nil, errors.New("connection reset")
	}
	return s.byYear[year], nil
}

func TestCalculateYears_BatchesPerYearAndAccumulates(t *testing.T) {
	exceptions := &stubExceptionRepo{byYear: map[int]map[int64][]time.Time{
		2021: {1: {date(2021, time.March, 1), date(2021, time.March, 2)}},
		2022: {1: {date(2022, time.April, 1)}, 2: {date(2022, time.April, 1)}},
	}}
	calc := NewAccrualCalculator(stubSettingRepo{settings: lftSettings()}, exceptions)

	employees := []vacation.Tenure{
		{EmployeeID: 1, HireDate: date(2020, time.January, 1)},
		{EmployeeID: 2, HireDate: date(2021, time.June, 1)},
	}
	got := calc.CalculateYears(context.Background(), employees, []int{2021, 2022})

	// 2020 is folded in for employee 1, who was hired that year
	assert.Equal(t, []int{2020, 2021, 2022}, exceptions.calls)

	require.Len(t, got[1], 2)
	assert.Equal(t, 10, got[1][0].RemainingDays)
	assert.Equal(t, 10, got[1][0].AccumulatedAvailableDays)
	assert.Equal(t, 13, got[1][1].RemainingDays)
	assert.Equal(t, 23, got[1][1].AccumulatedAvailableDays)

	require.Len(t, got[2], 2)
	assert.Equal(t, 0, got[2][0].EntitledDays)
	assert.Equal(t, 11, got[2][1].AccumulatedAvailableDays)
}

func TestCalculateYears_FailedYearDegradesToZero(t *testing.T) {
	exceptions := &stubExceptionRepo{
		byYear:  map[int]map[int64][]time.Time{2023: {1: {date(2023, time.May, 1)}}},
		failing: map[int]bool{2022: true},
	}
	calc := NewAccrualCalculator(stubSettingRepo{settings: lftSettings()}, exceptions)

	got := calc.CalculateYears(context.Background(),
		[]vacation.Tenure{{EmployeeID: 1, HireDate: date(2019, time.January, 1)}},
		[]int{2022, 2023},
	)

	require.Len(t, got[1], 2)
	assert.Equal(t, 0, got[1][0].EntitledDays)
	assert.Equal(t, 0, got[1][0].UsedDays)
	assert.Equal(t, 3, got[1][0].YearsPassed)
	assert.Equal(t, 18, got[1][1].EntitledDays)
	// 2019 to 2021 leave 0 + 12 + 14, 2022 counts as zero
	assert.Equal(t, 26+17, got[1][1].AccumulatedAvailableDays)
}

func TestCalculateYears_SettingsFailureDegradesAllYears(t *testing.T) {
	calc := NewAccrualCalculator(stubSettingRepo{err: errors.New("timeout")}, &stubExceptionRepo{})

	got := calc.CalculateYears(context.Background(),
		[]vacation.Tenure{{EmployeeID: 4, HireDate: date(2010, time.January, 1)}},
		[]int{2023},
	)

	require.Len(t, got[4], 1)
	assert.Equal(t, 0, got[4][0].EntitledDays)
	assert.Equal(t, 0, got[4][0].RemainingDays)
}

func TestCalculateYears_EmptyInput(t *testing.T) {
	exceptions := &stubExceptionRepo{}
	calc := NewAccrualCalculator(stubSettingRepo{settings: lftSettings()}, exceptions)

	got := calc.CalculateYears(context.Background(), nil, []int{2023})

	assert.Empty(t, got)
	assert.Empty(t, exceptions.calls)
}

func TestCalculateYears_AccumulatesFromHireYear(t *testing.T) {
	byYear := map[int]map[int64][]time.Time{
		2020: {1: {date(2020, time.August, 3)}},
		2022: {1: {date(2022, time.February, 7), date(2022, time.February, 8)}},
		2024: {1: {date(2024, time.May, 20)}},
	}
	employees := []vacation.Tenure{{EmployeeID: 1, HireDate: date(2019, time.March, 1)}}

	full := NewAccrualCalculator(stubSettingRepo{settings: lftSettings()}, &stubExceptionRepo{byYear: byYear}).
		CalculateYears(context.Background(), employees, []int{2019, 2020, 2021, 2022, 2023, 2024})

	exceptions := &stubExceptionRepo{byYear: byYear}
	single := NewAccrualCalculator(stubSettingRepo{settings: lftSettings()}, exceptions).
		CalculateYears(context.Background(), employees, []int{2024})

	require.Len(t, full[1], 6)
	require.Len(t, single[1], 1)
	assert.Equal(t, 2024, single[1][0].Year)
	assert.Equal(t, full[1][5], single[1][0])
	assert.Equal(t, 0+11+14+14+18+19, single[1][0].AccumulatedAvailableDays)
	assert.Equal(t, []int{2019, 2020, 2021, 2022, 2023, 2024}, exceptions.calls)
}

func TestCalculateYears_SkipsYearsBeforeHire(t *testing.T) {
	exceptions := &stubExceptionRepo{}
	calc := NewAccrualCalculator(stubSettingRepo{settings: lftSettings()}, exceptions)

	got := calc.CalculateYears(context.Background(), []vacation.Tenure{
		{EmployeeID: 1, HireDate: date(2022, time.January, 1)},
		{EmployeeID: 2, HireDate: date(2024, time.January, 1)},
	}, []int{2023})

	assert.Equal(t, []int{2022, 2023}, exceptions.calls)
	assert.Equal(t, 12, got[1][0].AccumulatedAvailableDays)
	assert.Equal(t, 0, got[2][0].AccumulatedAvailableDays)
}

func TestCalculateYears_FailedLeadInYearCountsAsZero(t *testing.T) {
	exceptions := &stubExceptionRepo{failing: map[int]bool{2021: true}}
	calc := NewAccrualCalculator(stubSettingRepo{settings: lftSettings()}, exceptions)

	got := calc.CalculateYears(context.Background(),
		[]vacation.Tenure{{EmployeeID: 1, HireDate: date(2019, time.January, 1)}},
		[]int{2022},
	)

	require.Len(t, got[1], 1)
	assert.Equal(t, 12+16, got[1][0].AccumulatedAvailableDays)
}
