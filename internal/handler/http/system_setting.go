package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/systemsetting"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/handler/http/response"
)

type SystemSettingHandler interface {
	GetActive(w http.ResponseWriter, r *http.Request)
	UpdateActive(w http.ResponseWriter, r *http.Request)
	UploadLogo(w http.ResponseWriter, r *http.Request)
}

type systemSettingHandlerImpl struct {
	systemSettingService systemsetting.SystemSettingService
}

func NewSystemSettingHandler(systemSettingService systemsetting.SystemSettingService) SystemSettingHandler {
	return &systemSettingHandlerImpl{
		systemSettingService: systemSettingService,
	}
}

// GetActive implements SystemSettingHandler.
func (h *systemSettingHandlerImpl) GetActive(w http.ResponseWriter, r *http.Request) {
	result, err := h.systemSettingService.GetActive(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateActive implements SystemSettingHandler.
func (h *systemSettingHandlerImpl) UpdateActive(w http.ResponseWriter, r *http.Request) {
	var req systemsetting.UpdateSystemSettingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateSystemSetting decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.systemSettingService.UpdateActive(r.Context(), req)
	if err != nil {
		slog.Error("UpdateSystemSetting service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "System setting updated successfully", result)
}

// UploadLogo implements SystemSettingHandler.
func (h *systemSettingHandlerImpl) UploadLogo(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	file, _, err := r.FormFile("logo")
	if err != nil {
		response.BadRequest(w, "Field 'logo' is required", nil)
		return
	}
	defer file.Close()

	result, err := h.systemSettingService.UploadLogo(r.Context(), file)
	if err != nil {
		slog.Error("UploadLogo service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Logo uploaded successfully", result)
}
