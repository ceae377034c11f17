package systemsetting

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/systemsetting"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/service/file"
)

type SystemSettingServiceImpl struct {
	repo            systemsetting.SystemSettingRepository
	fileService     file.FileService
	fallbackLogoURL string
}

func NewSystemSettingService(repo systemsetting.SystemSettingRepository, fileService file.FileService, fallbackLogoURL string) systemsetting.SystemSettingService {
	return &SystemSettingServiceImpl{
		repo:            repo,
		fileService:     fileService,
		fallbackLogoURL: fallbackLogoURL,
	}
}

// GetActive implements systemsetting.SystemSettingService.
func (s *SystemSettingServiceImpl) GetActive(ctx context.Context) (systemsetting.SystemSettingResponse, error) {
	setting, err := s.repo.GetActive(ctx)
	if err != nil {
		return systemsetting.SystemSettingResponse{}, err
	}
	return toResponse(setting), nil
}

// UpdateActive implements systemsetting.SystemSettingService. An empty logo_url clears the override.
func (s *SystemSettingServiceImpl) UpdateActive(ctx context.Context, req systemsetting.UpdateSystemSettingRequest) (systemsetting.SystemSettingResponse, error) {
	if err := req.Validate(); err != nil {
		return systemsetting.SystemSettingResponse{}, err
	}

	logoURL := req.LogoURL
	if logoURL != nil && *logoURL == "" {
		logoURL = nil
	}

	setting, err := s.repo.UpsertActiveLogo(ctx, logoURL)
	if err != nil {
		return systemsetting.SystemSettingResponse{}, err
	}
	return toResponse(setting), nil
}

// UploadLogo implements systemsetting.SystemSettingService.
func (s *SystemSettingServiceImpl) UploadLogo(ctx context.Context, file io.Reader) (systemsetting.SystemSettingResponse, error) {
	url, err := s.fileService.UploadLogo(ctx, file)
	if err != nil {
		return systemsetting.SystemSettingResponse{}, err
	}

	setting, err := s.repo.UpsertActiveLogo(ctx, &url)
	if err != nil {
		return systemsetting.SystemSettingResponse{}, err
	}
	return toResponse(setting), nil
}

// LogoURL implements systemsetting.SystemSettingService.
func (s *SystemSettingServiceImpl) LogoURL(ctx context.Context) (string, error) {
	setting, err := s.repo.GetActive(ctx)
	switch {
	case err == nil:
		if setting.LogoURL != nil && *setting.LogoURL != "" {
			return *setting.LogoURL, nil
		}
	case !errors.Is(err, systemsetting.ErrSystemSettingNotFound):
		return "", err
	}

	if s.fallbackLogoURL == "" {
		return "", systemsetting.ErrLogoNotConfigured
	}
	return s.fallbackLogoURL, nil
}

func toResponse(setting systemsetting.SystemSetting) systemsetting.SystemSettingResponse {
	return systemsetting.SystemSettingResponse{
		ID:        setting.ID,
		LogoURL:   setting.LogoURL,
		UpdatedAt: setting.UpdatedAt.Format(time.RFC3339),
	}
}
