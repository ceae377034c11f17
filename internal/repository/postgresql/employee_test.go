package postgresql

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var employeeDetailColumnNames = []string{
	"id", "code", "first_name", "last_name", "second_last_name", "hire_date",
	"department_id", "position_id", "business_unit_id", "person_id", "user_id",
	"created_at", "updated_at", "deleted_at",
	"department_name", "position_name", "business_unit_name", "business_unit_slug",
	"rfc", "curp", "imss_nss",
}

func employeeDetailRow(id int64, code, first, last string) []interface{} {
	ts := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	return []interface{}{
		id, code, first, last, nil, time.Date(2019, 3, 1, 0, 0, 0, 0, time.UTC),
		int64(5), int64(2), int64(1), nil, nil,
		ts, ts, nil,
		nil, nil, nil, nil,
		nil, nil, nil,
	}
}

func newEmployeeRepoWithMock(t *testing.T) (pgxmock.PgxPoolIface, employee.EmployeeRepository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewEmployeeRepository(database.NewFromPool(mock), []string{"acme", "acme-air"})
}

func TestBuildDirectoryWhere_DefaultsToActiveScopedUnits(t *testing.T) {
	repo := &employeeRepositoryImpl{systemBusiness: []string{"acme"}}

	where, args := repo.buildDirectoryWhere(employee.EmployeeFilter{})

	assert.Equal(t, "bu.active = true AND bu.slug = ANY($1) AND e.deleted_at IS NULL", where)
	assert.Equal(t, []interface{}{[]string{"acme"}}, args)
}

func TestBuildDirectoryWhere_OnlyInactiveKeepsDeletedRows(t *testing.T) {
	repo := &employeeRepositoryImpl{systemBusiness: []string{"acme"}}

	where, _ := repo.buildDirectoryWhere(employee.EmployeeFilter{OnlyInactive: true})

	assert.NotContains(t, where, "deleted_at")
}

func TestBuildDirectoryWhere_IgnoresUnsetNumericFilters(t *testing.T) {
	repo := &employeeRepositoryImpl{systemBusiness: []string{"acme"}}

	where, args := repo.buildDirectoryWhere(employee.EmployeeFilter{DepartmentID: 0, PositionID: -1, EmployeeID: 0})

	assert.NotContains(t, where, "department_id")
	assert.NotContains(t, where, "position_id")
	assert.Len(t, args, 1)
}

func TestBuildDirectoryWhere_AllFilters(t *testing.T) {
	repo := &employeeRepositoryImpl{systemBusiness: []string{"acme"}}

	where, args := repo.buildDirectoryWhere(employee.EmployeeFilter{
		Search:            " perez ",
		DepartmentID:      5,
		PositionID:        7,
		EmployeeID:        9,
		ResponsibleUserID: 11,
	})

	assert.Contains(t, where, "CONCAT_WS(' ', e.first_name, e.last_name, e.second_last_name) ILIKE $2")
	assert.Contains(t, where, "e.code = $3")
	assert.Contains(t, where, "pe.rfc ILIKE $2")
	assert.Contains(t, where, "e.department_id = $4")
	assert.Contains(t, where, "e.position_id = $5")
	assert.Contains(t, where, "e.id = $6")
	assert.Contains(t, where, "ure.user_id = $7")
	assert.Contains(t, where, "OR e.user_id = $7)")
	assert.Equal(t, []interface{}{[]string{"acme"}, "%perez%", "perez", int64(5), int64(7), int64(9), int64(11)}, args)
}

func TestBuildDirectoryWhere_HireDateRange(t *testing.T) {
	repo := &employeeRepositoryImpl{systemBusiness: []string{"acme"}}

	where, args := repo.buildDirectoryWhere(employee.EmployeeFilter{
		StartDate:         "2020-01-01",
		EndDate:           "2020-12-31",
		ResponsibleUserID: 3,
	})

	assert.Contains(t, where, "e.hire_date >= $2")
	assert.Contains(t, where, "e.hire_date <= $3")
	assert.Contains(t, where, "ure.user_id = $4")
	assert.Equal(t, []interface{}{
		[]string{"acme"},
		time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC),
		int64(3),
	}, args)
}

func TestEmployeeRepository_ListForReport(t *testing.T) {
	mock, repo := newEmployeeRepoWithMock(t)

	rows := pgxmock.NewRows(employeeDetailColumnNames).
		AddRow(employeeDetailRow(1, "E001", "Ana", "Lopez")...).
		AddRow(employeeDetailRow(2, "E002", "Luis", "Perez")...)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY e.code ASC")).
		WithArgs([]string{"acme", "acme-air"}, int64(5)).
		WillReturnRows(rows)

	got, err := repo.ListForReport(context.Background(), employee.EmployeeFilter{DepartmentID: 5})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "E001", got[0].Code)
	assert.Equal(t, "Luis Perez", got[1].FullName())
	assert.True(t, got[1].IsActive())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_ListForReport_EmptyResult(t *testing.T) {
	mock, repo := newEmployeeRepoWithMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM employees e")).
		WithArgs([]string{"acme", "acme-air"}).
		WillReturnRows(pgxmock.NewRows(employeeDetailColumnNames))

	got, err := repo.ListForReport(context.Background(), employee.EmployeeFilter{})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_List_Paginates(t *testing.T) {
	mock, repo := newEmployeeRepoWithMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)")).
		WithArgs([]string{"acme", "acme-air"}).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(21)))
	mock.ExpectQuery(regexp.QuoteMeta("LIMIT $2 OFFSET $3")).
		WithArgs([]string{"acme", "acme-air"}, 10, 10).
		WillReturnRows(pgxmock.NewRows(employeeDetailColumnNames).AddRow(employeeDetailRow(11, "E011", "Eva", "Ruiz")...))

	got, total, err := repo.List(context.Background(), employee.EmployeeFilter{Page: 2, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(21), total)
	require.Len(t, got, 1)
	assert.Equal(t, int64(11), got[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_GetByID_NotFound(t *testing.T) {
	mock, repo := newEmployeeRepoWithMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE e.id = $1")).
		WithArgs(int64(99)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_Create_DuplicateCode(t *testing.T) {
	mock, repo := newEmployeeRepoWithMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO employees")).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

	_, err := repo.Create(context.Background(), employee.Employee{Code: "E001"})
	assert.ErrorIs(t, err, employee.ErrEmployeeCodeExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_Update_BuildsOrderedSetClause(t *testing.T) {
	mock, repo := newEmployeeRepoWithMock(t)

	code := "E100"
	dept := int64(3)
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE employees SET code = $1, department_id = $2, updated_at = NOW() WHERE id = $3")).
		WithArgs("E100", int64(3), int64(8)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(8)))

	err := repo.Update(context.Background(), employee.UpdateEmployeeRequest{ID: 8, Code: &code, DepartmentID: &dept})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_SoftDelete_NotFound(t *testing.T) {
	mock, repo := newEmployeeRepoWithMock(t)

	mock.ExpectExec(regexp.QuoteMeta("SET deleted_at = NOW()")).
		WithArgs(int64(4)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.SoftDelete(context.Background(), 4)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
