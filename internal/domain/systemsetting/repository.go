package systemsetting

import "context"

type SystemSettingRepository interface {
	GetActive(ctx context.Context) (SystemSetting, error)
	// UpsertActiveLogo sets the logo of the active row, creating that row when none exists.
	UpsertActiveLogo(ctx context.Context, logoURL *string) (SystemSetting, error)
}
