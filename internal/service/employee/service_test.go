package employee

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/service/access"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	byID    map[int64]employee.EmployeeWithDetails
	listed  []employee.EmployeeFilter
	total   int64
	created []employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id int64) (employee.EmployeeWithDetails, error) {
	emp, ok := f.byID[id]
	if !ok {
		return employee.EmployeeWithDetails{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	emp.ID = 100
	f.created = append(f.created, emp)
	f.byID[emp.ID] = employee.EmployeeWithDetails{Employee: emp}
	return emp, nil
}

func (f *fakeEmployeeRepo) List(_ context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeWithDetails, int64, error) {
	f.listed = append(f.listed, filter)
	var out []employee.EmployeeWithDetails
	for _, emp := range f.byID {
		out = append(out, emp)
	}
	return out, f.total, nil
}

type fakeUserRepo struct {
	user.UserRepository
}

func (fakeUserRepo) IsResponsibleFor(_ context.Context, _ int64, employeeID int64) (bool, error) {
	return employeeID == 1, nil
}

func claimsContext(t *testing.T, userID int64, role user.Role, employeeID *int64) context.Context {
	t.Helper()
	svc := jwt.NewJWTService("secret", "1h", "24h", false)
	tokenString, _, err := svc.GenerateAccessToken(userID, "user@example.com", employeeID, role)
	require.NoError(t, err)
	token, err := jwtauth.VerifyToken(svc.JWTAuth(), tokenString)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func newTestService() (*fakeEmployeeRepo, employee.EmployeeService) {
	repo := &fakeEmployeeRepo{byID: map[int64]employee.EmployeeWithDetails{
		1: {Employee: employee.Employee{ID: 1, Code: "E001", FirstName: "Ana", LastName: "Lopez", HireDate: time.Date(2019, 3, 1, 0, 0, 0, 0, time.UTC)}},
	}}
	return repo, NewEmployeeService(repo, access.NewGuard(fakeUserRepo{}))
}

func TestGetEmployee_Access(t *testing.T) {
	_, svc := newTestService()
	self := int64(1)
	other := int64(2)

	resp, err := svc.GetEmployee(claimsContext(t, 5, user.RoleEmployee, &self), 1)
	require.NoError(t, err)
	assert.Equal(t, "Ana Lopez", resp.FullName)
	assert.Equal(t, "2019-03-01", resp.HireDate)
	assert.True(t, resp.Active)

	_, err = svc.GetEmployee(claimsContext(t, 5, user.RoleEmployee, &other), 1)
	assert.ErrorIs(t, err, employee.ErrUnauthorized)

	_, err = svc.GetEmployee(claimsContext(t, 9, user.RoleManager, nil), 1)
	assert.NoError(t, err)

	_, err = svc.GetEmployee(claimsContext(t, 1, user.RoleAdmin, nil), 7)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCreateEmployee(t *testing.T) {
	repo, svc := newTestService()

	resp, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		Code:           "E100",
		FirstName:      "Luis",
		LastName:       "Perez",
		HireDate:       "2022-06-01",
		DepartmentID:   5,
		PositionID:     2,
		BusinessUnitID: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.ID)
	require.Len(t, repo.created, 1)
	assert.Equal(t, time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC), repo.created[0].HireDate)
}

func TestCreateEmployee_Validation(t *testing.T) {
	repo, svc := newTestService()

	_, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		Code:     "E100",
		HireDate: time.Now().AddDate(0, 0, 3).Format(validator.DateLayout),
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := map[string]bool{}
	for _, v := range verrs {
		fields[v.Field] = true
	}
	assert.True(t, fields["first_name"])
	assert.True(t, fields["hire_date"])
	assert.True(t, fields["business_unit_id"])
	assert.Empty(t, repo.created)
}

func TestListEmployees_DefaultsAndScope(t *testing.T) {
	repo, svc := newTestService()
	repo.total = 1

	resp, err := svc.ListEmployees(claimsContext(t, 9, user.RoleManager, nil), employee.EmployeeFilter{ResponsibleUserID: 3})
	require.NoError(t, err)

	require.Len(t, repo.listed, 1)
	assert.Equal(t, 1, repo.listed[0].Page)
	assert.Equal(t, 20, repo.listed[0].Limit)
	assert.Equal(t, int64(9), repo.listed[0].ResponsibleUserID)
	assert.Equal(t, 1, resp.TotalPages)
	assert.Equal(t, "1-1 of 1", resp.Showing)
}

func TestListEmployees_Empty(t *testing.T) {
	repo, svc := newTestService()
	repo.byID = map[int64]employee.EmployeeWithDetails{}

	resp, err := svc.ListEmployees(claimsContext(t, 1, user.RoleAdmin, nil), employee.EmployeeFilter{Page: 2, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, "0 of 0", resp.Showing)
	assert.Equal(t, 0, resp.TotalPages)
	assert.Empty(t, resp.Employees)
	assert.NotNil(t, resp.Employees)
}
