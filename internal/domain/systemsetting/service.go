package systemsetting

import (
	"context"
	"io"
)

type SystemSettingService interface {
	GetActive(ctx context.Context) (SystemSettingResponse, error)
	UpdateActive(ctx context.Context, req UpdateSystemSettingRequest) (SystemSettingResponse, error)
	// UploadLogo stores the image and makes its public URL the active logo.
	UploadLogo(ctx context.Context, file io.Reader) (SystemSettingResponse, error)
	// LogoURL resolves the logo that brands reports: active setting first, then fallback.
	LogoURL(ctx context.Context) (string, error)
}
