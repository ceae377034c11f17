package report

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/report"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/vacation"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/pkg/branding"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/service/access"
	"github.com/xuri/excelize/v2"
)

// LogoSource resolves the URL of the logo that brands reports.
type LogoSource interface {
	LogoURL(ctx context.Context) (string, error)
}

type ReportServiceImpl struct {
	employeeRepo  employee.EmployeeRepository
	exceptionRepo vacation.ShiftExceptionRepository
	calculator    vacation.AccrualCalculator
	guard         *access.Guard
	logos         LogoSource
	injector      *branding.Injector
	now           func() time.Time
}

func NewReportService(
	employeeRepo employee.EmployeeRepository,
	exceptionRepo vacation.ShiftExceptionRepository,
	calculator vacation.AccrualCalculator,
	guard *access.Guard,
	logos LogoSource,
	injector *branding.Injector,
) report.ReportService {
	return &ReportServiceImpl{
		employeeRepo:  employeeRepo,
		exceptionRepo: exceptionRepo,
		calculator:    calculator,
		guard:         guard,
		logos:         logos,
		injector:      injector,
		now:           time.Now,
	}
}

// reportData is everything a workbook is built from.
type reportData struct {
	years     []int
	employees []employee.EmployeeWithDetails
	records   map[int64][]vacation.YearRecord
}

// VacationDetailReport implements report.ReportService.
func (s *ReportServiceImpl) VacationDetailReport(ctx context.Context, filter report.VacationReportFilter) (report.File, error) {
	data, err := s.load(ctx, filter)
	if err != nil {
		return report.File{}, err
	}

	content, err := render(func(f *excelize.File) error {
		return buildDetailWorkbook(f, detailRows(data))
	})
	if err != nil {
		return report.File{}, s.fail("vacation detail", err)
	}

	return newFile("vacations", data.years, content), nil
}

// UsedDaysReport implements report.ReportService.
func (s *ReportServiceImpl) UsedDaysReport(ctx context.Context, filter report.VacationReportFilter) (report.File, error) {
	data, err := s.load(ctx, filter)
	if err != nil {
		return report.File{}, err
	}

	logo, err := s.fetchLogo(ctx)
	if err != nil {
		return report.File{}, s.fail("used days", err)
	}

	content, err := render(func(f *excelize.File) error {
		return buildUsedDaysWorkbook(f, usedDayRows(data), logo)
	})
	if err != nil {
		return report.File{}, s.fail("used days", err)
	}

	return newFile("vacation_used_days", data.years, content), nil
}

// VacationSummaryReport implements report.ReportService.
func (s *ReportServiceImpl) VacationSummaryReport(ctx context.Context, filter report.VacationReportFilter) (report.File, error) {
	data, err := s.load(ctx, filter)
	if err != nil {
		return report.File{}, err
	}

	logo, err := s.fetchLogo(ctx)
	if err != nil {
		return report.File{}, s.fail("vacation summary", err)
	}

	today := s.now()
	blocks := yearBlocks(data.years, today.Year())
	content, err := render(func(f *excelize.File) error {
		return buildSummaryWorkbook(f, blocks, summaryRows(data), logo, today)
	})
	if err != nil {
		return report.File{}, s.fail("vacation summary", err)
	}

	return newFile("vacation_summary", data.years, content), nil
}

// load validates the filter, scopes it to the caller and gathers employees and year records.
// Validation and access errors are returned as is, anything else fails the report.
func (s *ReportServiceImpl) load(ctx context.Context, filter report.VacationReportFilter) (reportData, error) {
	if err := filter.Validate(); err != nil {
		return reportData{}, err
	}

	employeeFilter := filter.EmployeeFilter()
	if err := s.guard.ScopeFilter(ctx, &employeeFilter); err != nil {
		return reportData{}, err
	}

	startYear, endYear, err := s.yearRange(ctx, filter)
	if err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return reportData{}, err
		}
		return reportData{}, s.fail("year range", err)
	}

	employees, err := s.employeeRepo.ListForReport(ctx, employeeFilter)
	if err != nil {
		return reportData{}, s.fail("employee directory", err)
	}

	years := make([]int, 0, endYear-startYear+1)
	for y := startYear; y <= endYear; y++ {
		years = append(years, y)
	}

	tenures := make([]vacation.Tenure, 0, len(employees))
	for _, emp := range employees {
		tenures = append(tenures, vacation.Tenure{EmployeeID: emp.ID, HireDate: emp.HireDate})
	}

	return reportData{
		years:     years,
		employees: employees,
		records:   s.calculator.CalculateYears(ctx, tenures, years),
	}, nil
}

func (s *ReportServiceImpl) fetchLogo(ctx context.Context) (image.Image, error) {
	url, err := s.logos.LogoURL(ctx)
	if err != nil {
		return nil, err
	}
	return s.injector.Fetch(ctx, url)
}

func (s *ReportServiceImpl) fail(stage string, err error) error {
	slog.Error("report generation error", "stage", stage, "error", err)
	return fmt.Errorf("%w: %s: %v", report.ErrReportGenerationFailed, stage, err)
}

// render builds a fresh workbook and serializes it. Nothing is returned on failure.
func render(build func(f *excelize.File) error) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := build(f); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func newFile(prefix string, years []int, content []byte) report.File {
	name := fmt.Sprintf("%s_%d.xlsx", prefix, years[0])
	if len(years) > 1 {
		name = fmt.Sprintf("%s_%d-%d.xlsx", prefix, years[0], years[len(years)-1])
	}
	return report.File{
		Filename:    name,
		ContentType: report.ContentTypeXLSX,
		Content:     content,
	}
}
