package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/vacation"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/handler/http/response"
)

type VacationHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	ListSettings(w http.ResponseWriter, r *http.Request)
	CreateShiftException(w http.ResponseWriter, r *http.Request)
	ListShiftExceptions(w http.ResponseWriter, r *http.Request)
	DeleteShiftException(w http.ResponseWriter, r *http.Request)
}

type vacationHandlerImpl struct {
	vacationService vacation.VacationService
}

func NewVacationHandler(vacationService vacation.VacationService) VacationHandler {
	return &vacationHandlerImpl{
		vacationService: vacationService,
	}
}

// queryYear returns 0 when the year parameter is absent.
func queryYear(r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("year")
	if raw == "" {
		return 0, true
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return year, true
}

// GetBalance implements VacationHandler.
func (h *vacationHandlerImpl) GetBalance(w http.ResponseWriter, r *http.Request) {
	employeeID := urlID(r, "id")
	if employeeID == 0 {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}
	year, ok := queryYear(r)
	if !ok {
		response.BadRequest(w, "year must be a number", nil)
		return
	}

	result, err := h.vacationService.GetBalance(r.Context(), employeeID, year)
	if err != nil {
		slog.Error("GetBalance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListSettings implements VacationHandler.
func (h *vacationHandlerImpl) ListSettings(w http.ResponseWriter, r *http.Request) {
	results, err := h.vacationService.ListSettings(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// CreateShiftException implements VacationHandler.
func (h *vacationHandlerImpl) CreateShiftException(w http.ResponseWriter, r *http.Request) {
	var req vacation.CreateShiftExceptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateShiftException decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = urlID(r, "id")

	result, err := h.vacationService.CreateShiftException(r.Context(), req)
	if err != nil {
		slog.Error("CreateShiftException service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift exception created successfully", result)
}

// ListShiftExceptions implements VacationHandler.
func (h *vacationHandlerImpl) ListShiftExceptions(w http.ResponseWriter, r *http.Request) {
	employeeID := urlID(r, "id")
	if employeeID == 0 {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}
	year, ok := queryYear(r)
	if !ok {
		response.BadRequest(w, "year must be a number", nil)
		return
	}

	results, err := h.vacationService.ListShiftExceptions(r.Context(), employeeID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// DeleteShiftException implements VacationHandler.
func (h *vacationHandlerImpl) DeleteShiftException(w http.ResponseWriter, r *http.Request) {
	if err := h.vacationService.DeleteShiftException(r.Context(), urlID(r, "id")); err != nil {
		slog.Error("DeleteShiftException service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift exception deleted successfully", nil)
}
