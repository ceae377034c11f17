package report

import "errors"

var (
	ErrInvalidYearRange       = errors.New("report start year is after its end year")
	ErrReportGenerationFailed = errors.New("failed to generate report")
)
