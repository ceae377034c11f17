package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/report"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReportService struct {
	filter report.VacationReportFilter
	kind   string
	err    error
}

func (f *fakeReportService) file(kind string, filter report.VacationReportFilter) (report.File, error) {
	f.kind = kind
	f.filter = filter
	if f.err != nil {
		return report.File{}, f.err
	}
	return report.File{
		Filename:    kind + "_2024.xlsx",
		ContentType: report.ContentTypeXLSX,
		Content:     []byte("PK"),
	}, nil
}

func (f *fakeReportService) VacationDetailReport(ctx context.Context, filter report.VacationReportFilter) (report.File, error) {
	return f.file("vacations", filter)
}

func (f *fakeReportService) UsedDaysReport(ctx context.Context, filter report.VacationReportFilter) (report.File, error) {
	return f.file("vacation_used_days", filter)
}

func (f *fakeReportService) VacationSummaryReport(ctx context.Context, filter report.VacationReportFilter) (report.File, error) {
	return f.file("vacation_summary", filter)
}

type routerFixture struct {
	router  http.Handler
	jwt     jwt.Service
	reports *fakeReportService
}

func newRouterFixture(t *testing.T, uploads string) routerFixture {
	t.Helper()
	jwtService := jwt.NewJWTService(handlerTestSecret, "1h", "24h", false)
	reports := &fakeReportService{}

	// Only the report routes reach a service in these tests
	handlers := Handlers{
		Auth:          newTestAuthHandler(&fakeAuthService{}),
		Employee:      NewEmployeeHandler(nil),
		Master:        NewMasterHandler(nil),
		Vacation:      NewVacationHandler(nil),
		Report:        NewReportHandler(reports),
		SystemSetting: NewSystemSettingHandler(nil),
	}
	router := NewRouter(jwtService, handlers, RouterOptions{
		AllowedOrigins: []string{"http://frontend.test"},
		UploadsPath:    uploads,
	})
	return routerFixture{router: router, jwt: jwtService, reports: reports}
}

func (f routerFixture) token(t *testing.T, role user.Role) string {
	t.Helper()
	token, _, err := f.jwt.GenerateAccessToken(1, "someone@example.com", nil, role)
	require.NoError(t, err)
	return token
}

func (f routerFixture) get(path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestReportRoutes(t *testing.T) {
	t.Run("download with parsed filter", func(t *testing.T) {
		f := newRouterFixture(t, "")
		path := "/api/v1/reports/vacations/summary?search=ana&department_id=3&position_id=x" +
			"&only_inactive=true&user_responsible_id=9&filter_start_date=2023-01-01" +
			"&filter_end_date=2024-12-31&only_one_year=1"

		rec := f.get(path, f.token(t, user.RoleAdmin))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, report.ContentTypeXLSX, rec.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="vacation_summary_2024.xlsx"`, rec.Header().Get("Content-Disposition"))
		assert.Equal(t, "PK", rec.Body.String())

		assert.Equal(t, report.VacationReportFilter{
			Search:            "ana",
			DepartmentID:      3,
			ResponsibleUserID: 9,
			OnlyInactive:      true,
			StartDate:         "2023-01-01",
			EndDate:           "2024-12-31",
			OnlyOneYear:       true,
		}, f.reports.filter)
	})

	t.Run("negative ids are dropped while parsing", func(t *testing.T) {
		f := newRouterFixture(t, "")
		path := "/api/v1/reports/vacations?department_id=-3&employee_id=-1&user_responsible_id=-9&only_one_year=1"

		rec := f.get(path, f.token(t, user.RoleAdmin))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Zero(t, f.reports.filter.DepartmentID)
		assert.Zero(t, f.reports.filter.EmployeeID)
		assert.Zero(t, f.reports.filter.ResponsibleUserID)
	})

	t.Run("each variant has its own route", func(t *testing.T) {
		f := newRouterFixture(t, "")
		token := f.token(t, user.RoleManager)

		for path, kind := range map[string]string{
			"/api/v1/reports/vacations":           "vacations",
			"/api/v1/reports/vacations/used-days": "vacation_used_days",
			"/api/v1/reports/vacations/summary":   "vacation_summary",
		} {
			rec := f.get(path, token)
			assert.Equal(t, http.StatusOK, rec.Code, path)
			assert.Equal(t, kind, f.reports.kind, path)
		}
	})

	t.Run("permissions", func(t *testing.T) {
		f := newRouterFixture(t, "")

		assert.Equal(t, http.StatusUnauthorized, f.get("/api/v1/reports/vacations", "").Code)
		assert.Equal(t, http.StatusForbidden, f.get("/api/v1/reports/vacations", f.token(t, user.RoleEmployee)).Code)
		assert.Empty(t, f.reports.kind)
	})

	t.Run("generation failure hides cause", func(t *testing.T) {
		f := newRouterFixture(t, "")
		f.reports.err = fmt.Errorf("%w: render: disk full", report.ErrReportGenerationFailed)

		rec := f.get("/api/v1/reports/vacations", f.token(t, user.RoleAdmin))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "Failed to generate report")
		assert.NotContains(t, rec.Body.String(), "disk full")
	})
}

func TestUploadsAreServed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "logos"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "logos", "brand.png"), []byte("png-bytes"), 0o644))
	f := newRouterFixture(t, dir)

	rec := f.get("/uploads/logos/brand.png", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "png-bytes", rec.Body.String())
	assert.Equal(t, http.StatusNotFound, f.get("/uploads/logos/missing.png", "").Code)
}
