package http

import (
	"context"
	"net/http"

	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/report"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/pkg/validator"
)

type ReportHandler interface {
	// Per-year vacation detail workbook
	GetVacationReport(w http.ResponseWriter, r *http.Request)

	// Per-day used vacation workbook
	GetUsedDaysReport(w http.ResponseWriter, r *http.Request)

	// Multi-year summary workbook
	GetVacationSummaryReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

func reportFilterFromRequest(r *http.Request) report.VacationReportFilter {
	query := r.URL.Query()
	return report.VacationReportFilter{
		Search:            query.Get("search"),
		DepartmentID:      validator.ParseID(query.Get("department_id")),
		PositionID:        validator.ParseID(query.Get("position_id")),
		EmployeeID:        validator.ParseID(query.Get("employee_id")),
		ResponsibleUserID: validator.ParseID(query.Get("user_responsible_id")),
		OnlyInactive:      validator.ParseFlag(query.Get("only_inactive")),
		StartDate:         query.Get("filter_start_date"),
		EndDate:           query.Get("filter_end_date"),
		OnlyOneYear:       validator.ParseFlag(query.Get("only_one_year")),
	}
}

type reportBuilder func(ctx context.Context, filter report.VacationReportFilter) (report.File, error)

func (h *reportHandlerImpl) serve(w http.ResponseWriter, r *http.Request, build reportBuilder) {
	file, err := build(r.Context(), reportFilterFromRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Attachment(w, file.Filename, file.ContentType, file.Content)
}

// GetVacationReport handles GET /reports/vacations
func (h *reportHandlerImpl) GetVacationReport(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.reportService.VacationDetailReport)
}

// GetUsedDaysReport handles GET /reports/vacations/used-days
func (h *reportHandlerImpl) GetUsedDaysReport(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.reportService.UsedDaysReport)
}

// GetVacationSummaryReport handles GET /reports/vacations/summary
func (h *reportHandlerImpl) GetVacationSummaryReport(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.reportService.VacationSummaryReport)
}
