package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/master/businessunit"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/master/department"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/master/position"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/vacation"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedEmployees(t *testing.T, setup *TestDatabaseSetup) []employee.Employee {
	t.Helper()
	ctx := context.Background()

	unit, err := postgresql.NewBusinessUnitRepository(setup.DB).Create(ctx, businessunit.BusinessUnit{
		Name: "Acme", Slug: "acme", Active: true,
	})
	require.NoError(t, err)
	dept, err := postgresql.NewDepartmentRepository(setup.DB).Create(ctx, department.Department{Name: "Operations"})
	require.NoError(t, err)
	pos, err := postgresql.NewPositionRepository(setup.DB).Create(ctx, position.Position{Name: "Analyst"})
	require.NoError(t, err)

	repo := postgresql.NewEmployeeRepository(setup.DB, []string{"acme"})
	var created []employee.Employee
	for _, e := range []employee.Employee{
		{Code: "E002", FirstName: "Luis", LastName: "Perez", HireDate: day(2021, time.March, 1)},
		{Code: "E001", FirstName: "Ana", LastName: "Lopez", HireDate: day(2019, time.June, 15)},
	} {
		e.DepartmentID, e.PositionID, e.BusinessUnitID = dept.ID, pos.ID, unit.ID
		emp, err := repo.Create(ctx, e)
		require.NoError(t, err)
		created = append(created, emp)
	}
	return created
}

func TestVacationStorage(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	employees := seedEmployees(t, setup)
	luis, ana := employees[0], employees[1]

	exceptions := postgresql.NewShiftExceptionRepository(setup.DB)
	for _, ex := range []vacation.ShiftException{
		{EmployeeID: ana.ID, Date: day(2023, time.December, 26), Type: vacation.ShiftExceptionVacation},
		{EmployeeID: ana.ID, Date: day(2024, time.January, 2), Type: vacation.ShiftExceptionVacation},
		{EmployeeID: ana.ID, Date: day(2024, time.January, 3), Type: vacation.ShiftExceptionSickLeave},
		{EmployeeID: luis.ID, Date: day(2024, time.July, 8), Type: vacation.ShiftExceptionVacation},
	} {
		_, err := exceptions.Create(ctx, ex)
		require.NoError(t, err)
	}

	t.Run("duplicate date", func(t *testing.T) {
		_, err := exceptions.Create(ctx, vacation.ShiftException{
			EmployeeID: ana.ID, Date: day(2024, time.January, 2), Type: vacation.ShiftExceptionRest,
		})
		assert.ErrorIs(t, err, vacation.ErrShiftExceptionDuplicate)
	})

	t.Run("vacation dates per year", func(t *testing.T) {
		dates, err := exceptions.VacationDatesByYear(ctx, []int64{ana.ID, luis.ID}, 2024)
		require.NoError(t, err)

		require.Len(t, dates[ana.ID], 1)
		assert.True(t, dates[ana.ID][0].Equal(day(2024, time.January, 2)))
		require.Len(t, dates[luis.ID], 1)
	})

	t.Run("earliest vacation year", func(t *testing.T) {
		year, found, err := exceptions.EarliestVacationYear(ctx)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, 2023, year)
	})

	t.Run("seeded brackets", func(t *testing.T) {
		settings, err := postgresql.NewVacationSettingRepository(setup.DB).List(ctx)
		require.NoError(t, err)
		require.Len(t, settings, 11)
		assert.Equal(t, 12, settings[0].VacationDays)
		assert.Nil(t, settings[10].YearsTo)
	})

	t.Run("report listing is ordered by code", func(t *testing.T) {
		rows, err := postgresql.NewEmployeeRepository(setup.DB, []string{"acme"}).
			ListForReport(ctx, employee.EmployeeFilter{})
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "E001", rows[0].Code)
		assert.Equal(t, "E002", rows[1].Code)
	})
}
