package vacation

import (
	"context"
	"time"

	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/vacation"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/service/access"
)

type VacationServiceImpl struct {
	employeeRepo  employee.EmployeeRepository
	settingRepo   vacation.VacationSettingRepository
	exceptionRepo vacation.ShiftExceptionRepository
	calculator    vacation.AccrualCalculator
	guard         *access.Guard
	now           func() time.Time
}

func NewVacationService(
	employeeRepo employee.EmployeeRepository,
	settingRepo vacation.VacationSettingRepository,
	exceptionRepo vacation.ShiftExceptionRepository,
	calculator vacation.AccrualCalculator,
	guard *access.Guard,
) vacation.VacationService {
	return &VacationServiceImpl{
		employeeRepo:  employeeRepo,
		settingRepo:   settingRepo,
		exceptionRepo: exceptionRepo,
		calculator:    calculator,
		guard:         guard,
		now:           time.Now,
	}
}

// GetBalance implements vacation.VacationService. Records run from the hire year up
// to year so the accumulated balance covers the whole tenure.
func (s *VacationServiceImpl) GetBalance(ctx context.Context, employeeID int64, year int) (vacation.BalanceResponse, error) {
	if year == 0 {
		year = s.now().Year()
	}
	if !vacation.ValidYear(year) {
		return vacation.BalanceResponse{}, vacation.ErrInvalidYear
	}
	if err := s.guard.CanAccessEmployee(ctx, employeeID); err != nil {
		return vacation.BalanceResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return vacation.BalanceResponse{}, err
	}

	startYear := emp.HireDate.Year()
	if startYear > year {
		startYear = year
	}
	years := make([]int, 0, year-startYear+1)
	for y := startYear; y <= year; y++ {
		years = append(years, y)
	}

	records := s.calculator.CalculateYears(ctx, []vacation.Tenure{{EmployeeID: emp.ID, HireDate: emp.HireDate}}, years)

	resp := vacation.BalanceResponse{
		EmployeeID: emp.ID,
		HireDate:   emp.HireDate.Format(validator.DateLayout),
		Years:      make([]vacation.YearRecordResponse, 0, len(years)),
	}
	for _, rec := range records[emp.ID] {
		resp.Years = append(resp.Years, toYearRecordResponse(rec))
	}
	return resp, nil
}

func toYearRecordResponse(rec vacation.YearRecord) vacation.YearRecordResponse {
	dates := make([]string, 0, len(rec.UsedDates))
	for _, d := range rec.UsedDates {
		dates = append(dates, d.Format(validator.DateLayout))
	}
	return vacation.YearRecordResponse{
		Year:                     rec.Year,
		YearsPassed:              rec.YearsPassed,
		EntitledDays:             rec.EntitledDays,
		UsedDays:                 rec.UsedDays,
		RemainingDays:            rec.RemainingDays,
		AccumulatedAvailableDays: rec.AccumulatedAvailableDays,
		UsedDates:                dates,
	}
}

// ListSettings implements vacation.VacationService.
func (s *VacationServiceImpl) ListSettings(ctx context.Context) ([]vacation.VacationSettingResponse, error) {
	settings, err := s.settingRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]vacation.VacationSettingResponse, 0, len(settings))
	for _, setting := range settings {
		responses = append(responses, vacation.VacationSettingResponse{
			ID:           setting.ID,
			YearsFrom:    setting.YearsFrom,
			YearsTo:      setting.YearsTo,
			VacationDays: setting.VacationDays,
		})
	}
	return responses, nil
}

// CreateShiftException implements vacation.VacationService.
func (s *VacationServiceImpl) CreateShiftException(ctx context.Context, req vacation.CreateShiftExceptionRequest) (vacation.ShiftExceptionResponse, error) {
	if err := req.Validate(); err != nil {
		return vacation.ShiftExceptionResponse{}, err
	}
	if err := s.guard.CanAccessEmployee(ctx, req.EmployeeID); err != nil {
		return vacation.ShiftExceptionResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return vacation.ShiftExceptionResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	if date.Before(emp.HireDate) {
		return vacation.ShiftExceptionResponse{}, validator.ValidationErrors{{
			Field:   "date",
			Message: "date must not be before the employee's hire date",
		}}
	}

	created, err := s.exceptionRepo.Create(ctx, vacation.ShiftException{
		EmployeeID:  req.EmployeeID,
		Date:        date,
		Type:        vacation.ShiftExceptionType(req.Type),
		Description: req.Description,
	})
	if err != nil {
		return vacation.ShiftExceptionResponse{}, err
	}

	return toShiftExceptionResponse(created), nil
}

// ListShiftExceptions implements vacation.VacationService.
func (s *VacationServiceImpl) ListShiftExceptions(ctx context.Context, employeeID int64, year int) ([]vacation.ShiftExceptionResponse, error) {
	if year != 0 && !vacation.ValidYear(year) {
		return nil, vacation.ErrInvalidYear
	}
	if err := s.guard.CanAccessEmployee(ctx, employeeID); err != nil {
		return nil, err
	}

	exceptions, err := s.exceptionRepo.ListByEmployee(ctx, employeeID, year)
	if err != nil {
		return nil, err
	}

	responses := make([]vacation.ShiftExceptionResponse, 0, len(exceptions))
	for _, ex := range exceptions {
		responses = append(responses, toShiftExceptionResponse(ex))
	}
	return responses, nil
}

// DeleteShiftException implements vacation.VacationService.
func (s *VacationServiceImpl) DeleteShiftException(ctx context.Context, id int64) error {
	ex, err := s.exceptionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.guard.CanAccessEmployee(ctx, ex.EmployeeID); err != nil {
		return err
	}
	return s.exceptionRepo.SoftDelete(ctx, id)
}

func toShiftExceptionResponse(ex vacation.ShiftException) vacation.ShiftExceptionResponse {
	return vacation.ShiftExceptionResponse{
		ID:          ex.ID,
		EmployeeID:  ex.EmployeeID,
		Date:        ex.Date.Format(validator.DateLayout),
		Type:        string(ex.Type),
		Description: ex.Description,
	}
}
