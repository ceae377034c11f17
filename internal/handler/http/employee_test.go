package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeService struct {
	employee.EmployeeService
	filter employee.EmployeeFilter
	list   employee.ListEmployeeResponse
}

func (f *fakeEmployeeService) ListEmployees(_ context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	f.filter = filter
	return f.list, nil
}

func TestListEmployees_PaginationMeta(t *testing.T) {
	svc := &fakeEmployeeService{list: employee.ListEmployeeResponse{
		TotalCount: 45,
		Page:       2,
		Limit:      20,
		TotalPages: 3,
		Showing:    "21-40 of 45",
		Employees:  []employee.EmployeeResponse{},
	}}
	handler := NewEmployeeHandler(svc)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/employees?page=2&limit=20&search=ana&only_inactive=yes", nil)
	rec := httptest.NewRecorder()

	handler.ListEmployees(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, svc.filter.Page)
	assert.Equal(t, 20, svc.filter.Limit)
	assert.Equal(t, "ana", svc.filter.Search)
	assert.True(t, svc.filter.OnlyInactive)

	body := decodeBody(t, rec)
	meta, ok := body["meta"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(2), meta["page"])
	assert.Equal(t, float64(20), meta["limit"])
	assert.Equal(t, float64(45), meta["total_items"])
	assert.Equal(t, float64(3), meta["total_pages"])

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "21-40 of 45", data["showing"])
}
