package report

import "context"

type ReportService interface {
	// VacationDetailReport builds one sheet per year with a row per employee.
	VacationDetailReport(ctx context.Context, filter VacationReportFilter) (File, error)

	// UsedDaysReport builds one sheet per year with a row per vacation day taken.
	UsedDaysReport(ctx context.Context, filter VacationReportFilter) (File, error)

	// VacationSummaryReport builds a single sheet with a block of columns per year.
	VacationSummaryReport(ctx context.Context, filter VacationReportFilter) (File, error)
}
