package systemsetting

import "time"

// SystemSetting holds deployment-wide branding. Only one row is active at a time.
type SystemSetting struct {
	ID        int64
	LogoURL   *string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
